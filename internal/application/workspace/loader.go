// Package workspace mantém o snapshot em memória dos dados da API externa:
// as quatro coleções mais o relatório, carregados juntos e substituídos de uma vez.
package workspace

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/marmitaware/marmitaware-bff/internal/application/dto"
	"github.com/marmitaware/marmitaware-bff/internal/application/ports"
	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
	"github.com/marmitaware/marmitaware-bff/pkg/logger"
)

// Nomes dos recursos em Snapshot.Falhas.
const (
	ResourceIngredientes = "ingredientes"
	ResourceMarmitas     = "marmitas"
	ResourceVendas       = "vendas"
	ResourceCompras      = "compras"
	ResourceRelatorio    = "relatorio"
)

// Policy define o que fazer quando uma das cinco leituras falha.
type Policy int

const (
	// PerResource substitui o recurso que falhou por vazio (relatório zerado) e segue.
	PerResource Policy = iota
	// FailFast aborta a carga inteira no primeiro erro e mantém o snapshot anterior.
	FailFast
)

// Snapshot estado imutável de uma carga. Nunca é alterado depois de publicado.
type Snapshot struct {
	Ingredientes []entity.Ingrediente
	Marmitas     []entity.Marmita
	Vendas       []entity.Venda
	Compras      []entity.Compra
	Relatorio    *entity.Relatorio
	Falhas       map[string]string // recurso -> mensagem do erro
	CarregadoEm  time.Time
}

// Degraded informa se algum recurso foi substituído por vazio.
func (s *Snapshot) Degraded() bool {
	return len(s.Falhas) > 0
}

// AllFailed informa se nenhuma das cinco leituras teve sucesso.
func (s *Snapshot) AllFailed() bool {
	return len(s.Falhas) == 5
}

// Loader carrega e publica snapshots.
type Loader struct {
	api    ports.BackendAPI
	policy Policy
	log    *logger.Logger
	now    func() time.Time

	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializa cargas; leituras usam current sem bloqueio
}

// Option ajusta o Loader.
type Option func(*Loader)

// WithPolicy troca a política de falha parcial.
func WithPolicy(p Policy) Option { return func(l *Loader) { l.policy = p } }

// WithLogger injeta o logger raiz; o Loader acrescenta component=workspace.
func WithLogger(log *logger.Logger) Option { return func(l *Loader) { l.log = log } }

// WithClock fixa o relógio usado em CarregadoEm.
func WithClock(now func() time.Time) Option { return func(l *Loader) { l.now = now } }

// NewLoader constrói o carregador. A política padrão é PerResource.
func NewLoader(api ports.BackendAPI, opts ...Option) *Loader {
	l := &Loader{api: api, policy: PerResource, log: logger.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.Named("workspace")
	return l
}

// Current devolve o último snapshot publicado; na primeira chamada dispara a carga.
func (l *Loader) Current(ctx context.Context) (*Snapshot, error) {
	if s := l.current.Load(); s != nil {
		return s, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if s := l.current.Load(); s != nil {
		return s, nil
	}
	return l.loadLocked(ctx)
}

// Peek devolve o snapshot publicado sem carregar (nil antes da primeira carga).
func (l *Loader) Peek() *Snapshot {
	return l.current.Load()
}

// Reload recarrega tudo. Chamado após cada escrita; não há atualização otimista.
func (l *Loader) Reload(ctx context.Context) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked(ctx)
}

func (l *Loader) loadLocked(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	var (
		ingredientes []entity.Ingrediente
		marmitas     []entity.Marmita
		vendas       []entity.Venda
		compras      []entity.Compra
		relatorio    *entity.Relatorio
		errs         [5]error
	)

	// ── Cinco leituras independentes em paralelo ──────────────────────────────
	// Em PerResource os erros ficam em errs e a goroutine retorna nil, para que
	// uma falha não cancele as outras leituras.
	g, gctx := errgroup.WithContext(ctx)
	run := func(i int, fn func(context.Context) error) {
		g.Go(func() error {
			err := fn(gctx)
			errs[i] = err
			if l.policy == FailFast {
				return err
			}
			return nil
		})
	}
	run(0, func(ctx context.Context) (err error) { ingredientes, err = l.api.ListIngredientes(ctx); return })
	run(1, func(ctx context.Context) (err error) { marmitas, err = l.api.ListMarmitas(ctx); return })
	run(2, func(ctx context.Context) (err error) { vendas, err = l.api.ListVendas(ctx); return })
	run(3, func(ctx context.Context) (err error) { compras, err = l.api.ListCompras(ctx); return })
	run(4, func(ctx context.Context) (err error) {
		relatorio, err = l.api.GetRelatorio(ctx, dto.RelatorioFiltro{})
		return
	})

	if err := g.Wait(); err != nil {
		l.log.Error().Err(err).Msg("carga abortada")
		return nil, fmt.Errorf("workspace: carregar: %w", err)
	}

	names := [5]string{ResourceIngredientes, ResourceMarmitas, ResourceVendas, ResourceCompras, ResourceRelatorio}
	falhas := make(map[string]string)
	for i, err := range errs {
		if err != nil {
			falhas[names[i]] = err.Error()
			l.log.Warn().Err(err).Str("recurso", names[i]).Msg("recurso indisponível, usando vazio")
		}
	}

	snap := &Snapshot{
		Ingredientes: nonNil(ingredientes),
		Marmitas:     nonNil(marmitas),
		Vendas:       nonNil(vendas),
		Compras:      nonNil(compras),
		Relatorio:    relatorio,
		Falhas:       falhas,
		CarregadoEm:  l.now(),
	}
	if snap.Relatorio == nil || errs[4] != nil {
		snap.Relatorio = &entity.Relatorio{}
	}
	l.current.Store(snap)

	l.log.Info().
		Int("ingredientes", len(snap.Ingredientes)).
		Int("marmitas", len(snap.Marmitas)).
		Int("vendas", len(snap.Vendas)).
		Int("compras", len(snap.Compras)).
		Str("falhas", strings.Join(sortedKeys(falhas), ",")).
		Dur("duration", time.Since(start)).
		Msg("snapshot carregado")
	return snap, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
