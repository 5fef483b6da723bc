package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// CompraUseCase casos de uso de compras.
type CompraUseCase struct {
	api   ports.CompraAPI
	snaps Snapshots
	log   *logger.Logger
	now   func() time.Time
}

// NewCompraUseCase constrói o caso de uso.
func NewCompraUseCase(api ports.CompraAPI, snaps Snapshots, log *logger.Logger) *CompraUseCase {
	return &CompraUseCase{api: api, snaps: snaps, log: log.Named("compras"), now: time.Now}
}

// List compras do snapshot, mais recentes primeiro, com o resumo.
func (uc *CompraUseCase) List(ctx context.Context) (*dto.CompraListResponse, error) {
	snap, err := uc.snaps.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("compras: snapshot: %w", err)
	}
	ordenadas := metrics.SortComprasByDate(snap.Compras)
	items := make([]dto.CompraResponse, 0, len(ordenadas))
	for _, c := range ordenadas {
		items = append(items, dto.ToCompraResponse(c))
	}
	resumo := metrics.SummarizePurchases(snap.Compras)
	return &dto.CompraListResponse{
		Items: items,
		Resumo: dto.ComprasResumoDTO{
			TotalGasto:    resumo.TotalGasto,
			NumeroCompras: resumo.NumeroCompras,
			TicketMedio:   resumo.TicketMedio,
		},
	}, nil
}

// Get consulta a API diretamente.
func (uc *CompraUseCase) Get(ctx context.Context, id int) (*dto.CompraResponse, error) {
	c, err := uc.api.GetCompra(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("compras: buscar %d: %w", id, err)
	}
	out := dto.ToCompraResponse(*c)
	return &out, nil
}

// Create exige valor e ao menos um ingrediente; data vazia ou ilegível vira hoje.
func (uc *CompraUseCase) Create(ctx context.Context, in dto.CreateCompraRequest) (*dto.WriteResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	in.Data = normalizeDate(in.Data, uc.now())
	msg, err := uc.api.CreateCompra(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("compras: registrar: %w", err)
	}
	uc.log.Info().Str("valor_total", in.ValorTotal.String()).Str("data", in.Data).Msg("compra registrada")
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Update envia só os campos informados; data ilegível é descartada.
func (uc *CompraUseCase) Update(ctx context.Context, id int, in dto.UpdateCompraRequest) (*dto.WriteResponse, error) {
	in.Data = normalizeOptionalDate(in.Data)
	if in.ValorTotal == nil && in.Data == nil && len(in.IngredientesPrecos) == 0 {
		return nil, errNothingToUpdate
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.api.UpdateCompra(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("compras: atualizar %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Delete remove e recarrega.
func (uc *CompraUseCase) Delete(ctx context.Context, id int) (*dto.WriteResponse, error) {
	msg, err := uc.api.DeleteCompra(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("compras: remover %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}
