// Package usecase casos de uso de escrita e leitura por recurso.
//
// Fluxo de escrita: valida localmente, envia uma única requisição à API e
// recarrega o snapshot inteiro. Não há atualização otimista.
package usecase

import (
	"context"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/workspace"
	"github.com/marmitaware/marmitaware-bff/internal/domain"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// Snapshots acesso ao snapshot em memória (implementado por *workspace.Loader).
type Snapshots interface {
	Current(ctx context.Context) (*workspace.Snapshot, error)
	Reload(ctx context.Context) (*workspace.Snapshot, error)
}

// errNothingToUpdate atualização sem nenhum campo.
var errNothingToUpdate = domain.NewValidationError("body", "min=1")

// afterWrite recarrega o snapshot após uma escrita bem-sucedida.
// Falha na recarga não desfaz a escrita: vira aviso na resposta.
func afterWrite(ctx context.Context, snaps Snapshots, log *logger.Logger, msg string) *dto.WriteResponse {
	resp := &dto.WriteResponse{Message: msg}
	snap, err := snaps.Reload(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("recarga após escrita falhou")
		resp.Falhas = map[string]string{"recarga": err.Error()}
		return resp
	}
	if snap.Degraded() {
		resp.Falhas = snap.Falhas
	}
	return resp
}
