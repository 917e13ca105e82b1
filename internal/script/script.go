// Package script runs small Lua programs against the GCD engine inside a
// gopher-lua sandbox.
package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/flarebyte/gcd/internal/ctxlog"
	lua "github.com/yuin/gopher-lua"
)

// ErrTimeout is returned when a script runs past its deadline.
var ErrTimeout = errors.New("sandbox timeout")

// Options bound a single run.
type Options struct {
	Timeout time.Duration // zero disables the deadline
	Libs    []string
}

// Run executes code with args bound to the `args` table and returns the
// script's first return value converted to Go (nil, bool, float64, string,
// []any or map[string]any).
func Run(ctx context.Context, code string, args []uint64, opts Options) (any, error) {
	logger := ctxlog.FromContext(ctx)
	for i, n := range args {
		if n > MaxExact {
			return nil, fmt.Errorf("argument %d (%d) exceeds the exact integer range of Lua numbers", i+1, n)
		}
	}

	L := newSandboxState(opts.Libs, deterministicSeed(code))
	defer L.Close()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	L.SetContext(ctx)
	installBindings(L, args)

	fn, err := L.LoadString(code)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	logger.Debug("script finished", "elapsed", time.Since(start), "result_type", ret.Type().String())
	return fromLValue(ret), nil
}

// Format renders a script result for stdout. Integral numbers print
// without a fractional part; tables print as compact JSON.
func Format(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(x), nil
	case string:
		return x, nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) <= MaxExact {
			return strconv.FormatInt(int64(x), 10), nil
		}
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func fromLValue(v lua.LValue) any {
	switch v.Type() {
	case lua.LTNil:
		return nil
	case lua.LTBool:
		return lua.LVAsBool(v)
	case lua.LTNumber:
		return float64(v.(lua.LNumber))
	case lua.LTString:
		return v.String()
	case lua.LTTable:
		t := v.(*lua.LTable)
		arr := []any{}
		isArray := true
		t.ForEach(func(k, val lua.LValue) {
			if isArray {
				if lk, ok := k.(lua.LNumber); ok && int(lk) == len(arr)+1 {
					arr = append(arr, fromLValue(val))
				} else {
					isArray = false
				}
			}
		})
		if isArray {
			return arr
		}
		obj := map[string]any{}
		t.ForEach(func(k, val lua.LValue) {
			obj[k.String()] = fromLValue(val)
		})
		return obj
	default:
		return nil
	}
}
