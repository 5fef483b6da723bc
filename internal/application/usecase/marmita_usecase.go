package usecase

import (
	"context"
	"fmt"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// MarmitaUseCase casos de uso de marmitas e a pré-visualização de custo.
type MarmitaUseCase struct {
	api   ports.MarmitaAPI
	snaps Snapshots
	log   *logger.Logger
}

// NewMarmitaUseCase constrói o caso de uso.
func NewMarmitaUseCase(api ports.MarmitaAPI, snaps Snapshots, log *logger.Logger) *MarmitaUseCase {
	return &MarmitaUseCase{api: api, snaps: snaps, log: log.Named("marmitas")}
}

// List marmitas do snapshot com a margem de cada uma.
func (uc *MarmitaUseCase) List(ctx context.Context) (*dto.MarmitaListResponse, error) {
	snap, err := uc.snaps.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("marmitas: snapshot: %w", err)
	}
	items := make([]dto.MarmitaResponse, 0, len(snap.Marmitas))
	for _, m := range snap.Marmitas {
		items = append(items, dto.ToMarmitaResponse(m))
	}
	return &dto.MarmitaListResponse{Items: items, Total: len(items)}, nil
}

// Get consulta a API diretamente.
func (uc *MarmitaUseCase) Get(ctx context.Context, id int) (*dto.MarmitaResponse, error) {
	m, err := uc.api.GetMarmita(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("marmitas: buscar %d: %w", id, err)
	}
	out := dto.ToMarmitaResponse(*m)
	return &out, nil
}

// Create exige nome, preço e ao menos um ingrediente.
func (uc *MarmitaUseCase) Create(ctx context.Context, in dto.CreateMarmitaRequest) (*dto.WriteResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.api.CreateMarmita(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("marmitas: criar: %w", err)
	}
	uc.log.Info().Str("nome", in.Nome).Int("ingredientes", len(in.IngredientesQuantidades)).Msg("marmita criada")
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Update envia só os campos informados.
func (uc *MarmitaUseCase) Update(ctx context.Context, id int, in dto.UpdateMarmitaRequest) (*dto.WriteResponse, error) {
	if in.Nome == nil && in.PrecoVenda == nil && len(in.IngredientesQuantidades) == 0 {
		return nil, errNothingToUpdate
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.api.UpdateMarmita(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("marmitas: atualizar %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Delete remove e recarrega.
func (uc *MarmitaUseCase) Delete(ctx context.Context, id int) (*dto.WriteResponse, error) {
	msg, err := uc.api.DeleteMarmita(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("marmitas: remover %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// PreviewCost custo e margem da composição em edição, com os preços em cache.
// Ids sem ingrediente conhecido são ignorados e listados na resposta.
func (uc *MarmitaUseCase) PreviewCost(ctx context.Context, in dto.CostPreviewRequest) (*dto.CostPreviewResponse, error) {
	snap, err := uc.snaps.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("marmitas: snapshot: %w", err)
	}
	p := metrics.PreviewCost(in.IngredientesQuantidades, snap.Ingredientes, in.PrecoVenda)
	return &dto.CostPreviewResponse{
		CustoEstimado: p.CustoEstimado,
		PrecoVenda:    p.PrecoVenda,
		Margem:        p.Margem,
		IgnoradosIDs:  p.IgnoradosIDs,
	}, nil
}
