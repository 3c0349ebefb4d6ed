package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/propparty/propparty/observable"
	"github.com/propparty/propparty/strict"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
)

var (
	ww = []int{1, 10, 100}
	hh = []int{1, 10, 100}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure change-propagation latency for both engines",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Set calls per configuration",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this path",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkObservable(iters)
	benchmarkStrict(iters)
	return nil
}

// chainSchema lays out width independent chains of depth computed
// properties, every link adding one to the link it watches.
func chainSchema(width, depth int, derive func(watched string) any) (schema map[string]any, tails []string) {
	schema = map[string]any{"src": 1}
	for i := 0; i < width; i++ {
		prev := "src"
		for j := 0; j < depth; j++ {
			name := fmt.Sprintf("c%dx%d", i, j)
			schema[name] = derive(prev)
			prev = name
		}
		tails = append(tails, prev)
	}
	return schema, tails
}

func benchmarkObservable(iters int) {
	tbl := table.NewWriter()
	tbl.SetTitle("observable")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			schema, tails := chainSchema(w, h, func(watched string) any {
				return observable.Derive(func(o *observable.Object) any {
					return o.Get(watched).(int) + 1
				}, watched)
			})
			o := observable.New(schema)

			sink := 0
			for _, tail := range tails {
				o.On(observable.Changed(tail), func() { sink++ })
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				o.Set("src", i)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
}

func benchmarkStrict(iters int) {
	tbl := table.NewWriter()
	tbl.SetTitle("strict")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			schema, tails := chainSchema(w, h, func(watched string) any {
				return strict.Derive(func(o *strict.Object) any {
					return o.Get(watched).(int) + 1
				}, watched)
			})
			o := strict.New(schema, func(err error) {
				log.Fatal(err)
			})

			sink := 0
			for _, tail := range tails {
				o.On(strict.Changed(tail), func() { sink++ })
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := o.Set("src", i); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
}
