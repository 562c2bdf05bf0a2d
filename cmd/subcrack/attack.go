package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/jsonx"
	"gomod.pri/subcrack/alphabet"
	"gomod.pri/subcrack/bus"
	"gomod.pri/subcrack/engine"
	"gomod.pri/subcrack/xcache"
)

type attackFlags struct {
	poolSize int
	seed     uint64
	workers  int
	timeout  time.Duration
	json     bool
}

func newAttackCmd(a *app) *cobra.Command {
	var f attackFlags

	cmd := &cobra.Command{
		Use:   "attack [ciphertext...]",
		Short: "Recover the plaintext of a ciphertext without its key",
		Long: `Searches a pool of candidate keys (Caesar shifts, dictionary-seeded keys,
frequency-seeded random keys and their reversals) for the decoding that
segments into the longest dictionary words. The ciphertext is read from the
arguments, or from stdin when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cfg := a.cfg.Engine
			if cmd.Flags().Changed("pool-size") {
				cfg.PoolSize = f.poolSize
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = f.seed
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = f.workers
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = f.timeout
			}

			dict, ref, err := engine.Load(cmd.Context(), a.cfg.Resources)
			if err != nil {
				return err
			}

			var opts []engine.Option
			cache, err := xcache.New(a.cfg.Cache)
			if err != nil {
				return err
			}
			if cache != nil {
				opts = append(opts, engine.WithCache(cache))
			}
			if a.verbose {
				opts = append(opts, engine.WithBus(progressBus(cmd.ErrOrStderr())))
			}

			e, err := engine.New(alphabet.English, dict, ref, cfg, opts...)
			if err != nil {
				return err
			}
			res, err := e.Attack(cmd.Context(), text)
			if err != nil {
				return err
			}

			if f.json {
				out, err := jsonx.MarshalToString(res)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVar(&f.poolSize, "pool-size", 0, "candidate pool size (default from config)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for frequency-seeded keys")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "worker count (default: number of CPUs)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "stop dispatching keys after this long")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the result as JSON")
	return cmd
}

func printResult(w io.Writer, res engine.Result) {
	if !res.Found {
		fmt.Fprintf(w, "no plausible decoding found (%d of %d keys evaluated)\n", res.Evaluated, res.PoolSize)
	} else {
		fmt.Fprintf(w, "plaintext: %s\n", res.Plaintext)
		fmt.Fprintf(w, "key:       %s\n", res.Key)
		fmt.Fprintf(w, "strategy:  %s\n", *res.Strategy)
		fmt.Fprintf(w, "score:     %.3f\n", res.Score)
	}
	if res.Truncated {
		fmt.Fprintf(w, "warning: deadline reached, %d of %d keys evaluated\n", res.Evaluated, res.PoolSize)
	}
	fmt.Fprintf(w, "elapsed:   %s\n", res.Elapsed.Round(time.Millisecond))
}

// progressBus writes attack lifecycle events to w.
func progressBus(w io.Writer) bus.Bus {
	b := bus.New()
	_ = b.Subscribe(engine.TopicAttackStarted, func(ev engine.AttackStarted) {
		fmt.Fprintf(w, "attack %s: %d letters\n", ev.AttackID, ev.Letters)
	})
	_ = b.Subscribe(engine.TopicPoolBuilt, func(ev engine.PoolBuilt) {
		fmt.Fprintf(w, "attack %s: pool of %d keys (rotational %d, dictionary %d, frequency %d, reversed %d)\n",
			ev.AttackID, ev.Stats.Total, ev.Stats.Rotational, ev.Stats.Dictionary, ev.Stats.Frequency, ev.Stats.Reversed)
	})
	_ = b.Subscribe(engine.TopicAttackFinished, func(res engine.Result) {
		fmt.Fprintf(w, "attack %s: %d matches\n", res.AttackID, res.Matches)
	})
	return b
}
