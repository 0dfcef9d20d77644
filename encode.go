package nbudata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Upstream payloads carry rates and amounts as bare json numbers, so
	// exports do too.
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonIndent matches the indentation of the historical export files.
const jsonIndent = "      "

// bondGlossary lists the register's own field descriptions, as published, in
// payload order. It is embedded in per-instrument exports so a saved file
// explains itself.
var bondGlossary = []struct{ Field, Desc string }{
	{"cpcode", "ISIN цінного паперу"},
	{"nominal", "Номінал (грн.)"},
	{"auk_proc", "процентна ставка"},
	{"pgs_date", "дата погашення"},
	{"razm_date", "дата первинного розміщення"},
	{"pay_period", "період виплати відсотків (у днях)"},
	{"val_code", "Код валюти"},
	{"cptype", "Тип ЦП (DCP - ДЦП,OMP - муніціпальні)"},
	{"cpdescr", "Опис ЦП"},
	{"emit_okpo", "ЄДРПОУ емітента"},
	{"emit_name", "Назва емітента"},
	{"total_bonds", "кількість облігацій в обігу"},
	{"payments", "Платежі"},
	{"pay_date", "дата виплати відсотків"},
	{"pay_type", "тип виплати (1–відсоткі,2-погаш.,3-достр.погаш)"},
	{"pay_val", "купон виплати за 1 папір"},
}

// EncodeBonds writes bonds to w as one indented JSON array in the upstream
// field vocabulary.
func EncodeBonds(w io.Writer, bonds []BondRecord) error {
	raw, err := json.Marshal(bonds)
	if err != nil {
		return fmt.Errorf("cannot encode bonds: %w", err)
	}
	return writeIndented(w, raw)
}

// EncodeRates writes rate records to w as one indented JSON array.
func EncodeRates(w io.Writer, records []RateRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("cannot encode rates: %w", err)
	}
	return writeIndented(w, raw)
}

// EncodeBondFile writes one bond to w as a self-describing document: the
// field glossary under "desc", then the record under "data".
func EncodeBondFile(w io.Writer, bond BondRecord) error {
	var desc jsonObjectWriter
	for _, g := range bondGlossary {
		desc.Append(g.Field, g.Desc)
	}
	var doc jsonObjectWriter
	doc.Append("desc", &desc)
	doc.Append("data", bond)

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode bond %s: %w", bond.ISIN, err)
	}
	return writeIndented(w, raw)
}

func writeIndented(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", jsonIndent); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
