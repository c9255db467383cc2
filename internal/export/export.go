package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/san-kum/compound/internal/growth"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatSVG  Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatJSON, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown format: %s (available: csv, json, svg)", s)
}

// Run is one calculation ready to be written out.
type Run struct {
	Params  growth.Params
	Result  growth.Result
	Trace   iter.Seq[growth.Snapshot]
	Metrics map[string]float64
}

type ExportData struct {
	Principal      decimal.Decimal    `json:"principal"`
	AnnualRate     float64            `json:"annual_rate_percent"`
	Frequency      int                `json:"compounding_frequency"`
	Years          int                `json:"years"`
	FinalAmount    decimal.Decimal    `json:"final_amount"`
	InterestEarned decimal.Decimal    `json:"interest_earned"`
	Metrics        map[string]float64 `json:"metrics,omitempty"`
	Snapshots      []SnapshotRecord   `json:"snapshots"`
}

type SnapshotRecord struct {
	Period int             `json:"period"`
	Amount decimal.Decimal `json:"amount"`
	Emit   bool            `json:"emit"`
}

// ErrNotFinite is returned for amounts that have no decimal form.
var ErrNotFinite = errors.New("amount is not finite")

// Amount rounds a currency value to cents.
func Amount(v float64) (decimal.Decimal, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	return decimal.NewFromFloat(v).Round(2), nil
}

func Write(w io.Writer, format Format, run Run) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, run.Trace)
	case FormatJSON:
		return WriteJSON(w, run)
	case FormatSVG:
		return WriteSVG(w, run.Trace, DefaultSVGOptions())
	}
	return fmt.Errorf("unknown format: %s", format)
}

// WriteFile creates path and writes run to it. A failed close is reported
// when the write itself succeeded.
func WriteFile(path string, format Format, run Run) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(file, format, run)
}

func WriteJSON(w io.Writer, run Run) error {
	var errs []error
	amount := func(field string, v float64) decimal.Decimal {
		d, err := Amount(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return d
	}

	data := ExportData{
		Principal:      amount("principal", run.Params.Principal),
		AnnualRate:     run.Params.AnnualRatePercent,
		Frequency:      run.Params.Frequency,
		Years:          run.Params.Years,
		FinalAmount:    amount("final_amount", run.Result.FinalAmount),
		InterestEarned: amount("interest_earned", run.Result.InterestEarned),
		Metrics:        run.Metrics,
		Snapshots:      make([]SnapshotRecord, 0, run.Params.Years),
	}

	for s := range run.Trace {
		data.Snapshots = append(data.Snapshots, SnapshotRecord{
			Period: s.Period,
			Amount: amount(fmt.Sprintf("year %d", s.Period), s.Amount),
			Emit:   s.Emit,
		})
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per snapshot under a period,amount,emit header.
func WriteCSV(w io.Writer, trace iter.Seq[growth.Snapshot]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"period", "amount", "emit"}); err != nil {
		return err
	}

	for s := range trace {
		amount, err := Amount(s.Amount)
		if err != nil {
			return fmt.Errorf("year %d: %w", s.Period, err)
		}
		row := []string{
			strconv.Itoa(s.Period),
			amount.StringFixed(2),
			strconv.FormatBool(s.Emit),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
