package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain/metrics"
	"github.com/marmitaware/marmitaware-bff/pkg/datebr"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// VendaUseCase casos de uso de vendas.
type VendaUseCase struct {
	api   ports.VendaAPI
	snaps Snapshots
	log   *logger.Logger
	now   func() time.Time
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(api ports.VendaAPI, snaps Snapshots, log *logger.Logger) *VendaUseCase {
	return &VendaUseCase{api: api, snaps: snaps, log: log.Named("vendas"), now: time.Now}
}

// WithClock fixa o relógio usado para a data padrão de novas vendas.
func (uc *VendaUseCase) WithClock(now func() time.Time) *VendaUseCase {
	uc.now = now
	return uc
}

// List vendas do snapshot, mais recentes primeiro, com o resumo.
// Vendas sem data válida vão para o fim da lista.
func (uc *VendaUseCase) List(ctx context.Context) (*dto.VendaListResponse, error) {
	snap, err := uc.snaps.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("vendas: snapshot: %w", err)
	}
	ordenadas := metrics.RecentSales(snap.Vendas, len(snap.Vendas))
	for _, v := range snap.Vendas {
		if _, ok := datebr.Parse(v.RawDate()); !ok {
			ordenadas = append(ordenadas, v)
		}
	}
	return &dto.VendaListResponse{
		Items:  dto.ToVendaResponses(ordenadas),
		Resumo: dto.ToVendasResumo(metrics.SummarizeSales(snap.Vendas)),
	}, nil
}

// Get consulta a API diretamente.
func (uc *VendaUseCase) Get(ctx context.Context, id int) (*dto.VendaResponse, error) {
	v, err := uc.api.GetVenda(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vendas: buscar %d: %w", id, err)
	}
	out := dto.ToVendaResponse(*v)
	return &out, nil
}

// Create exige marmita e quantidade; data vazia ou ilegível vira hoje.
func (uc *VendaUseCase) Create(ctx context.Context, in dto.CreateVendaRequest) (*dto.WriteResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	in.Data = normalizeDate(in.Data, uc.now())
	msg, err := uc.api.CreateVenda(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("vendas: registrar: %w", err)
	}
	uc.log.Info().Int("marmita_id", in.MarmitaID).Int("quantidade", in.Quantidade).Str("data", in.Data).Msg("venda registrada")
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Update envia só os campos informados; data ilegível é descartada.
func (uc *VendaUseCase) Update(ctx context.Context, id int, in dto.UpdateVendaRequest) (*dto.WriteResponse, error) {
	in.Data = normalizeOptionalDate(in.Data)
	if in.MarmitaID == nil && in.Quantidade == nil && in.Data == nil {
		return nil, errNothingToUpdate
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	msg, err := uc.api.UpdateVenda(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("vendas: atualizar %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// Delete remove e recarrega.
func (uc *VendaUseCase) Delete(ctx context.Context, id int) (*dto.WriteResponse, error) {
	msg, err := uc.api.DeleteVenda(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vendas: remover %d: %w", id, err)
	}
	return afterWrite(ctx, uc.snaps, uc.log, msg), nil
}

// normalizeDate devolve raw como YYYY-MM-DD, ou hoje quando raw não é uma data.
func normalizeDate(raw string, now time.Time) string {
	if t, ok := datebr.Parse(raw); ok {
		return datebr.ToAPI(t)
	}
	return datebr.ToAPI(datebr.Today(now))
}

// normalizeOptionalDate devolve nil quando raw é nil ou ilegível.
func normalizeOptionalDate(raw *string) *string {
	if raw == nil {
		return nil
	}
	t, ok := datebr.Parse(*raw)
	if !ok {
		return nil
	}
	s := datebr.ToAPI(t)
	return &s
}
