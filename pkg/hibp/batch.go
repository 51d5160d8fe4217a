package hibp

import (
	"context"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
)

// CheckAll looks up every password on a bounded pool of threads workers. Zero
// threads uses one worker per CPU. Results keep the order of passwords.
func (c *Checker) CheckAll(ctx context.Context, passwords []string, threads int) ([]Result, error) {
	return c.checkAll(ctx, passwords, threads, c.Check)
}

// CheckAllHashes is CheckAll for SHA1 hex digests. Invalid hashes are reported
// as unverified results.
func (c *Checker) CheckAllHashes(ctx context.Context, hashes []string, threads int) ([]Result, error) {
	return c.checkAll(ctx, hashes, threads, func(ctx context.Context, hash string) Result {
		res, err := c.CheckHash(ctx, hash)
		if err != nil {
			log.Warn().Err(err).Msgf("skipping %q", hash)
		}
		return res
	})
}

func (c *Checker) checkAll(ctx context.Context, inputs []string, threads int, check func(context.Context, string) Result) ([]Result, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(inputs) && len(inputs) > 0 {
		threads = len(inputs)
	}

	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	log.Debug().Msgf("checking %d inputs with %d threads", len(inputs), threads)
	for i := range inputs {
		// Each task writes only its own slot.
		if err = pool.Publish(func(idx int) {
			results[idx] = check(ctx, inputs[idx])
		}, i); err != nil {
			return nil, err
		}
	}

	pool.Wait()
	return results, ctx.Err()
}
