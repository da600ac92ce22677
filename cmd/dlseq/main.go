package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirkon/dlseq/internal/config"
	"github.com/sirkon/dlseq/internal/opscript"
	"github.com/sirkon/errors"
)

func main() {
	confPath := flag.String("config", "", "path to a yaml or toml config file")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config path] script.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed, err := run(*confPath, flag.Args())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// run проигрывает сценарии и возвращает число упавших.
func run(confPath string, scripts []string) (failed int, err error) {
	conf := config.Default()
	if confPath != "" {
		conf, err = config.Load(confPath)
		if err != nil {
			return 0, errors.Wrap(err, "load config")
		}
	}

	logger, err := newReplayLogger(conf.LogLevel, conf.Dump)
	if err != nil {
		return 0, errors.Wrap(err, "set up logger")
	}

	r := opscript.New(
		opscript.WithLogger(logger),
		opscript.WithHistoryDepth(conf.HistoryDepth),
	)
	for _, path := range scripts {
		s, err := opscript.Load(path)
		if err != nil {
			return failed, errors.Wrap(err, "load script")
		}

		if _, err := r.Replay(s); err != nil {
			// Ошибка уже залогирована проигрывателем.
			failed++
			if conf.StopOnFailure {
				return failed, nil
			}
		}
	}

	return failed, nil
}
