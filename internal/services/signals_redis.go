package services

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"areapulse/backend-go/internal/analytics"
)

// seedScript writes the initial window and ad intensity only when the area
// has never been seeded, so a restarted worker keeps the shared state.
var seedScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('RPUSH', KEYS[1], unpack(ARGV, 2))
  redis.call('SET', KEYS[2], ARGV[1])
  return 1
end
return 0
`)

// advanceScript shifts the window in one server-side step and returns the
// window before and after the shift.
var advanceScript = redis.NewScript(`
local prev = redis.call('LRANGE', KEYS[1], 0, -1)
if #prev == 0 then
  return redis.error_reply('UNSEEDED window is empty')
end
redis.call('RPUSH', KEYS[1], ARGV[1])
redis.call('LTRIM', KEYS[1], -tonumber(ARGV[2]), -1)
return {prev, redis.call('LRANGE', KEYS[1], 0, -1)}
`)

type RedisSignals struct {
	client redis.UniversalClient
	prefix string
	cat    *Catalog
}

func NewRedisSignals(ctx context.Context, client redis.UniversalClient, prefix string, cat *Catalog, rnd analytics.Rand) (*RedisSignals, error) {
	r := &RedisSignals{client: client, prefix: prefix, cat: cat}
	for _, code := range cat.Codes() {
		rec, _ := cat.Get(code)
		history := analytics.SeedHistory(rec.Metrics.HourlyRate, rnd)
		args := make([]interface{}, 0, len(history)+1)
		args = append(args, analytics.SeedAdIntensity(rnd))
		for _, p := range history {
			args = append(args, p)
		}
		if err := seedScript.Run(ctx, client, []string{r.historyKey(code), r.adKey(code)}, args...).Err(); err != nil {
			return nil, eris.Wrapf(err, "seed signals for %s", code)
		}
	}
	return r, nil
}

func (r *RedisSignals) historyKey(code string) string { return r.prefix + ":history:" + code }
func (r *RedisSignals) adKey(code string) string      { return r.prefix + ":ad:" + code }

func (r *RedisSignals) known(code string) error {
	if _, err := r.cat.Get(code); err != nil {
		return err
	}
	return nil
}

func (r *RedisSignals) History(ctx context.Context, code string) ([]int, error) {
	if err := r.known(code); err != nil {
		return nil, err
	}
	vals, err := r.client.LRange(ctx, r.historyKey(code), 0, -1).Result()
	if err != nil {
		return nil, eris.Wrapf(err, "read history for %s", code)
	}
	return atoiAll(vals)
}

func (r *RedisSignals) AdIntensity(ctx context.Context, code string) (int, error) {
	if err := r.known(code); err != nil {
		return 0, err
	}
	v, err := r.client.Get(ctx, r.adKey(code)).Int()
	if err != nil {
		return 0, eris.Wrapf(err, "read ad intensity for %s", code)
	}
	return v, nil
}

func (r *RedisSignals) Advance(ctx context.Context, code string, price int) ([]int, []int, error) {
	if err := r.known(code); err != nil {
		return nil, nil, err
	}
	res, err := advanceScript.Run(ctx, r.client, []string{r.historyKey(code)}, price, analytics.HistoryLen).Slice()
	if err != nil {
		return nil, nil, eris.Wrapf(err, "advance history for %s", code)
	}
	if len(res) != 2 {
		return nil, nil, eris.Errorf("advance history for %s: unexpected reply of %d parts", code, len(res))
	}
	prev, err := replyInts(res[0])
	if err != nil {
		return nil, nil, err
	}
	next, err := replyInts(res[1])
	if err != nil {
		return nil, nil, err
	}
	return prev, next, nil
}

func (r *RedisSignals) Backend() string { return "redis" }

// replyInts converts a nested script reply of string prices.
func replyInts(v interface{}) ([]int, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, eris.Errorf("unexpected reply type %T", v)
	}
	vals := make([]string, len(items))
	for i, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, eris.Errorf("unexpected price type %T", it)
		}
		vals[i] = s
	}
	return atoiAll(vals)
}

func atoiAll(vals []string) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, eris.Wrapf(err, "parse price %q", v)
		}
		out[i] = n
	}
	return out, nil
}
