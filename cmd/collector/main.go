// Command collector is the terminal front end for the obesity prediction
// service. By default it walks the user through the 16 health attributes
// interactively; every attribute can also be supplied as a flag for
// scripted use, in which case -interactive=false skips the prompts.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthml/obesity-predictor/internal/collector"
	"github.com/healthml/obesity-predictor/internal/domain/record"
	"github.com/healthml/obesity-predictor/pkg/logger"
)

const defaultTimeout = 30 * time.Second

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	var (
		baseURL     = flag.String("url", "http://localhost:8000", "base URL of the prediction service")
		timeout     = flag.Duration("timeout", defaultTimeout, "request timeout")
		interactive = flag.Bool("interactive", true, "prompt for attributes on the terminal")

		gender  = flag.String("gender", "", "gender (male/female)")
		age     = flag.Float64("age", 0, "age in years")
		height  = flag.Float64("height", 0, "height in meters")
		weight  = flag.Float64("weight", 0, "weight in kg")
		history = flag.String("family-history", "", "family history of overweight (yes/no)")
		favc    = flag.String("favc", "", "frequent high-calorie food (yes/no)")
		fcvc    = flag.Float64("fcvc", 0, "vegetable consumption (1-3)")
		ncp     = flag.Float64("ncp", 0, "meals per day (1-4)")
		caec    = flag.String("caec", "", "food between meals (no/sometimes/frequently/always)")
		smoke   = flag.String("smoke", "", "smoker (yes/no)")
		ch2o    = flag.Float64("ch2o", 0, "water intake (1-3)")
		scc     = flag.String("scc", "", "calorie monitoring (yes/no)")
		faf     = flag.Float64("faf", 0, "physical activity frequency (0-3)")
		tue     = flag.Float64("tue", 0, "technology use hours (0-3)")
		calc    = flag.String("calc", "", "alcohol consumption (never/sometimes/frequently/always)")
		mtrans  = flag.String("mtrans", "", "transportation mode")
	)
	flag.Parse()

	// Only flags the caller actually passed become record values; the
	// service treats absent numeric attributes as missing, which is not
	// the same thing as zero.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	str := func(name string, v *string) *string {
		if set[name] {
			return v
		}
		return nil
	}
	num := func(name string, v *float64) *float64 {
		if set[name] {
			return v
		}
		return nil
	}

	rec := record.InputRecord{
		Gender:                      str("gender", gender),
		Age:                         num("age", age),
		Height:                      num("height", height),
		Weight:                      num("weight", weight),
		FamilyHistoryWithOverweight: str("family-history", history),
		FAVC:                        str("favc", favc),
		FCVC:                        num("fcvc", fcvc),
		NCP:                         num("ncp", ncp),
		CAEC:                        str("caec", caec),
		SMOKE:                       str("smoke", smoke),
		CH2O:                        num("ch2o", ch2o),
		SCC:                         str("scc", scc),
		FAF:                         num("faf", faf),
		TUE:                         num("tue", tue),
		CALC:                        str("calc", calc),
		MTRANS:                      str("mtrans", mtrans),
	}

	cfg := &collector.Config{
		BaseURL:     *baseURL,
		Timeout:     *timeout,
		Interactive: *interactive,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := collector.Run(ctx, cfg, rec, os.Stdin, os.Stdout)
	os.Exit(collector.ExitCode(err))
}
