package usecase

import (
	"context"
	"fmt"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// IngredienteUseCase casos de uso de ingredientes.
type IngredienteUseCase struct {
	api   ports.IngredienteAPI
	snaps Snapshots
	log   *logger.Logger
}

// NewIngredienteUseCase constrói o caso de uso.
func NewIngredienteUseCase(api ports.IngredienteAPI, snaps Snapshots, log *logger.Logger) *IngredienteUseCase {
	return &IngredienteUseCase{api: api, snaps: snaps, log: log.Named("ingredientes")}
}

// List ingredientes do snapshot, compra mais recente primeiro, com o resumo.
func (uc *IngredienteUseCase) List(ctx context.Context) (*dto.IngredienteListResponse, error) {
	snap, err := uc.snaps.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingredientes: snapshot: %w", err)
	}
	ordenados := metrics.SortByLastPurchase(snap.Ingredientes)
	items := make([]dto.IngredienteResponse, 0, len(ordenados))
	for _, ing := range ordenados {
		items = append(items, dto.ToIngredienteResponse(ing))
	}
	resumo := metrics.SummarizeIngredients(snap.Ingredientes)
	return &dto.IngredienteListResponse{
		Items:  items,
		Resumo: dto.IngredientesResumoDTO{Total: resumo.Total, PrecoMedio: resumo.PrecoMedio},
	}, nil
}

// Get consulta a API diretamente.
func (uc *IngredienteUseCase) Get(ctx context.Context, id int) (*dto.IngredienteResponse, error) {
	ing, err := uc.api.GetIngrediente(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ingredientes: buscar %d: %w", id, err)
	}
	out := dto.ToIngredienteResponse(*ing)
	return &out, nil
}

// Create valida nome e preço antes de qualquer requisição.
func (uc *IngredienteUseCase) Create(ctx context.Context, in dto.CreateIngredienteRequest) (*dto.WriteResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.api.CreateIngrediente(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("ingredientes: criar: %w", err)
	}
	uc.log.Info().Str("nome", in.Nome).Msg("ingrediente criado")
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Update envia só os campos informados. Data ilegível conta como ausente.
func (uc *IngredienteUseCase) Update(ctx context.Context, id int, in dto.UpdateIngredienteRequest) (*dto.WriteResponse, error) {
	in.DataUltimaCompra = normalizeOptionalDate(in.DataUltimaCompra)
	if in.Nome == nil && in.PrecoCompra == nil && in.DataUltimaCompra == nil && in.IDUnidade == nil {
		return nil, errNothingToUpdate
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.api.UpdateIngrediente(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("ingredientes: atualizar %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Delete remove e recarrega.
func (uc *IngredienteUseCase) Delete(ctx context.Context, id int) (*dto.WriteResponse, error) {
	msg, err := uc.api.DeleteIngrediente(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ingredientes: remover %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}
