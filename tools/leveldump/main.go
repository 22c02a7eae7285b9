package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"new-haven-server/pkg/levels"
	"new-haven-server/pkg/logger"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	var (
		seed   int64
		from   int
		to     int
		format string
	)
	flag.Int64Var(&seed, "seed", 42, "Master seed")
	flag.IntVar(&from, "from", 1, "First level")
	flag.IntVar(&to, "to", 0, "Last level (0 - same as -from)")
	flag.StringVar(&format, "format", "yaml", "Output format: yaml | json")
	flag.Usage = printHelp
	flag.Parse()

	// Логи генератора не должны попадать в дамп
	logger.Silence()

	if to == 0 {
		to = from
	}
	if err := dump(os.Stdout, seed, from, to, format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dump(w io.Writer, seed int64, from, to int, format string) error {
	if from > to {
		return fmt.Errorf("invalid range %d..%d", from, to)
	}

	gen := levels.NewGenerator(seed)
	out := make([]*levels.LevelData, 0, to-from+1)
	for id := from; id <= to; id++ {
		data, err := gen.Generate(id)
		if err != nil {
			return err
		}
		out = append(out, data)
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(out)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return fmt.Errorf("unknown format %q", format)
}

func printHelp() {
	fmt.Println(`Level Dump - вывод сгенерированных уровней
Flags:
  -seed <n>      мастер-зерно (одинаковое зерно - одинаковые уровни)
  -from <id>     первый уровень (1..100)
  -to <id>       последний уровень
  -format <fmt>  yaml | json`)
}
