package marmitaapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marmitaware/marmitaware-bff/internal/domain/entity"
)

// ── Tipos tolerantes ──────────────────────────────────────────────────────────
// A API mistura números, strings numéricas e null no mesmo campo. Valores
// ilegíveis decodificam como "ausente" em vez de falhar o documento inteiro.

// flexNumber aceita 12, 12.5, "12.5", "12,5" e null.
type flexNumber struct {
	val decimal.Decimal
	set bool
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
		if !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	n.val, n.set = d, true
	return nil
}

// firstNumber devolve o primeiro valor presente, ou zero.
func firstNumber(ns ...flexNumber) decimal.Decimal {
	for _, n := range ns {
		if n.set {
			return n.val
		}
	}
	return decimal.Zero
}

func firstInt(ns ...flexNumber) int {
	return int(firstNumber(ns...).IntPart())
}

// flexString aceita string, número ou null.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = flexString(strings.TrimSpace(str))
		return nil
	}
	*s = flexString(b)
	return nil
}

func firstString(ss ...flexString) string {
	for _, s := range ss {
		if s != "" {
			return string(s)
		}
	}
	return ""
}

// flexIDMap converte {"1": 0.5, "x": 1} em map[int]decimal, descartando chaves não inteiras.
type flexIDMap map[string]flexNumber

func (m flexIDMap) toDomain() map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(m))
	for k, v := range m {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || !v.set {
			continue
		}
		out[id] = v.val
	}
	return out
}

// flexMap tolera objeto, null ou qualquer outro tipo (tratado como vazio).
type flexMap struct {
	m flexIDMap
}

func (f *flexMap) UnmarshalJSON(b []byte) error {
	var m flexIDMap
	if err := json.Unmarshal(b, &m); err == nil {
		f.m = m
	}
	return nil
}

func firstMap(ms ...flexMap) map[int]decimal.Decimal {
	for _, m := range ms {
		if len(m.m) > 0 {
			return m.m.toDomain()
		}
	}
	return map[int]decimal.Decimal{}
}

// ── Formas recebidas da API ───────────────────────────────────────────────────

type ingredienteWire struct {
	ID               flexNumber `json:"id"`
	IDIngrediente    flexNumber `json:"id_ingrediente"`
	Nome             flexString `json:"nome"`
	PrecoCompra      flexNumber `json:"preco_compra"`
	DataUltimaCompra flexString `json:"data_ultima_compra"`
	IDUnidade        flexNumber `json:"id_unidade"`
}

func (w ingredienteWire) toDomain() entity.Ingrediente {
	return entity.Ingrediente{
		ID:               firstInt(w.ID, w.IDIngrediente),
		Nome:             string(w.Nome),
		PrecoCompra:      firstNumber(w.PrecoCompra),
		DataUltimaCompra: string(w.DataUltimaCompra),
		IDUnidade:        firstInt(w.IDUnidade),
	}
}

type marmitaWire struct {
	ID                      flexNumber `json:"id"`
	IDMarmita               flexNumber `json:"id_marmita"`
	Nome                    flexString `json:"nome"`
	PrecoVenda              flexNumber `json:"preco_venda"`
	CustoEstimado           flexNumber `json:"custo_estimado"`
	Ingredientes            flexString `json:"ingredientes"`
	IngredientesQuantidades flexMap    `json:"ingredientes_quantidades"`
	QuantidadeIngredientes  flexMap    `json:"quantidade_ingredientes"`
}

func (w marmitaWire) toDomain() entity.Marmita {
	return entity.Marmita{
		ID:                      firstInt(w.ID, w.IDMarmita),
		Nome:                    string(w.Nome),
		PrecoVenda:              firstNumber(w.PrecoVenda),
		CustoEstimado:           firstNumber(w.CustoEstimado),
		Ingredientes:            string(w.Ingredientes),
		IngredientesQuantidades: firstMap(w.IngredientesQuantidades, w.QuantidadeIngredientes),
	}
}

type vendaWire struct {
	ID                flexNumber `json:"id"`
	IDVenda           flexNumber `json:"id_venda"`
	MarmitaID         flexNumber `json:"marmita_id"`
	IDMarmita         flexNumber `json:"id_marmita"`
	NomeMarmita       flexString `json:"nome_marmita"`
	QuantidadeVendida flexNumber `json:"quantidade_vendida"`
	Quantidade        flexNumber `json:"quantidade"`
	ValorTotal        flexNumber `json:"valor_total"`
	DataDeVenda       flexString `json:"data_de_venda"`
	Data              flexString `json:"data"`
}

func (w vendaWire) toDomain() entity.Venda {
	return entity.Venda{
		ID:                firstInt(w.ID, w.IDVenda),
		MarmitaID:         firstInt(w.MarmitaID, w.IDMarmita),
		NomeMarmita:       string(w.NomeMarmita),
		QuantidadeVendida: firstNumber(w.QuantidadeVendida, w.Quantidade),
		ValorTotal:        firstNumber(w.ValorTotal),
		DataDeVenda:       string(w.DataDeVenda),
		Data:              string(w.Data),
	}
}

type compraWire struct {
	ID                 flexNumber `json:"id"`
	IDCompra           flexNumber `json:"id_compra"`
	ValorTotal         flexNumber `json:"valor_total"`
	ValorTotalEspaco   flexNumber `json:"valor total"`
	Data               flexString `json:"data"`
	DataDeCompra       flexString `json:"data_de_compra"`
	IngredientesPrecos flexMap    `json:"ingredientes_precos"`
	PrecoIngredientes  flexMap    `json:"preco_ingredientes"`
}

func (w compraWire) toDomain() entity.Compra {
	return entity.Compra{
		ID:                 firstInt(w.ID, w.IDCompra),
		ValorTotal:         firstNumber(w.ValorTotal, w.ValorTotalEspaco),
		Data:               firstString(w.Data, w.DataDeCompra),
		IngredientesPrecos: firstMap(w.IngredientesPrecos, w.PrecoIngredientes),
	}
}

type relatorioWire struct {
	Periodo *struct {
		DataInicio flexString `json:"data_inicio"`
		DataFim    flexString `json:"data_fim"`
	} `json:"periodo"`
	Vendas *struct {
		ReceitaTotal          flexNumber `json:"receita_total"`
		CustoProdutosVendidos flexNumber `json:"custo_produtos_vendidos"`
		QuantidadeTotal       flexNumber `json:"quantidade_total"`
		MarmitaMaisVendida    flexString `json:"marmita_mais_vendida"`
		QuantidadeMaisVendida flexNumber `json:"quantidade_mais_vendida"`
	} `json:"vendas"`
	Compras *struct {
		TotalCompras  flexNumber `json:"total_compras"`
		NumeroCompras flexNumber `json:"numero_compras"`
	} `json:"compras"`
	Lucro *struct {
		LucroBruto         flexNumber `json:"lucro_bruto"`
		LucroLiquido       flexNumber `json:"lucro_liquido"`
		MargemLucroBruto   flexNumber `json:"margem_lucro_bruto"`
		MargemLucroLiquido flexNumber `json:"margem_lucro_liquido"`
	} `json:"lucro"`
}

// toDomain preserva seções ausentes como nil; quem consome decide o fallback.
func (w relatorioWire) toDomain() *entity.Relatorio {
	r := &entity.Relatorio{}
	if p := w.Periodo; p != nil {
		r.Periodo = &entity.RelatorioPeriodo{DataInicio: string(p.DataInicio), DataFim: string(p.DataFim)}
	}
	if v := w.Vendas; v != nil {
		r.Vendas = &entity.RelatorioVendas{
			ReceitaTotal:          firstNumber(v.ReceitaTotal),
			CustoProdutosVendidos: firstNumber(v.CustoProdutosVendidos),
			QuantidadeTotal:       firstNumber(v.QuantidadeTotal),
			MarmitaMaisVendida:    string(v.MarmitaMaisVendida),
			QuantidadeMaisVendida: firstNumber(v.QuantidadeMaisVendida),
		}
	}
	if c := w.Compras; c != nil {
		r.Compras = &entity.RelatorioCompras{
			TotalCompras:  firstNumber(c.TotalCompras),
			NumeroCompras: firstInt(c.NumeroCompras),
		}
	}
	if l := w.Lucro; l != nil {
		r.Lucro = &entity.RelatorioLucro{
			LucroBruto:         firstNumber(l.LucroBruto),
			LucroLiquido:       firstNumber(l.LucroLiquido),
			MargemLucroBruto:   firstNumber(l.MargemLucroBruto),
			MargemLucroLiquido: firstNumber(l.MargemLucroLiquido),
		}
	}
	return r
}

// ── Formas enviadas para a API ────────────────────────────────────────────────
// Valores monetários saem como número JSON, não como string.

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func idMap(m map[int]decimal.Decimal) map[string]json.Number {
	out := make(map[string]json.Number, len(m))
	for id, v := range m {
		out[strconv.Itoa(id)] = number(v)
	}
	return out
}
