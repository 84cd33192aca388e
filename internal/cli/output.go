package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	jsonMode bool
	w        io.Writer // stdout для данных
	errW     io.Writer // stderr для сообщений
}

// NewOutput создаёт Output. Если jsonMode=true, данные выводятся в JSON.
func NewOutput(jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        os.Stdout,
		errW:     os.Stderr,
	}
}

// Summary выводит сводку запуска: таблицу или JSON в зависимости
// от режима.
func (o *Output) Summary(summary domain.RunSummary) {
	if o.jsonMode {
		o.printJSON(summary)
		return
	}

	o.printTable(
		[]string{"FINISHED", "SKIPPED", "FAILED"},
		[][]string{{
			strconv.Itoa(summary.Finished),
			strconv.Itoa(summary.Skipped),
			strconv.Itoa(summary.Failed),
		}},
	)
}

// printTable выводит данные в виде таблицы через tabwriter.
func (o *Output) printTable(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

// printJSON выводит данные в формате JSON с отступами.
func (o *Output) printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(o.errW, "Error:", err)
		return
	}
	fmt.Fprintln(o.w, string(data))
}
