package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/avdva/floatbits"
	"github.com/avdva/floatbits/exact"
	"github.com/avdva/floatbits/format"
)

// report is everything shown about the current state of a bit field.
type report struct {
	Layout   string              `json:"layout"`
	Bits     *floatbits.BitField `json:"bits"`
	Value    string              `json:"value"`
	Class    string              `json:"class"`
	Exponent int                 `json:"exponent"`
	RawExp   uint64              `json:"rawExponent"`
	Bias     int                 `json:"bias"`
	Exact    string              `json:"exact"`
	Hex      string              `json:"hex"`
	Float64  string              `json:"float64"`
}

func newReport(f *floatbits.BitField) report {
	v := floatbits.Decode(f)
	c := f.Components()
	return report{
		Layout:   f.Layout().String(),
		Bits:     f.Clone(),
		Value:    format.Value(v),
		Class:    c.Class.String(),
		Exponent: c.Exponent,
		RawExp:   c.RawExponent,
		Bias:     c.Bias,
		Exact:    exact.String(v),
		Hex:      format.Hex(v),
		Float64:  format.Bits64(v),
	}
}

func writeReport(w io.Writer, r report, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 1, 1, ' ', 0)
	fmt.Fprintf(tw, "layout:\t%s\n", r.Layout)
	fmt.Fprintf(tw, "bits:\t%s\n", r.Bits)
	fmt.Fprintf(tw, "value:\t%s\n", r.Value)
	fmt.Fprintf(tw, "class:\t%s\n", r.Class)
	fmt.Fprintf(tw, "exponent:\t%d (raw %d, bias %d)\n", r.Exponent, r.RawExp, r.Bias)
	fmt.Fprintf(tw, "exact:\t%s\n", r.Exact)
	fmt.Fprintf(tw, "hex:\t%s\n", r.Hex)
	fmt.Fprintf(tw, "float64:\t%s\n", r.Float64)
	return tw.Flush()
}
