package script

import (
	"hash/fnv"
	"math/rand"

	lua "github.com/yuin/gopher-lua"
)

var libOpeners = map[string]lua.LGFunction{
	"base":   lua.OpenBase,
	"table":  lua.OpenTable,
	"string": lua.OpenString,
	"math":   lua.OpenMath,
}

// newSandboxState opens only the requested libraries. Unknown names are
// ignored; config validation rejects them earlier.
func newSandboxState(libs []string, seed int64) *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: 4096,
	})
	hasMath := false
	for _, name := range libs {
		open, ok := libOpeners[name]
		if !ok {
			continue
		}
		L.Push(L.NewFunction(open))
		L.Push(lua.LString(name))
		L.Call(1, 0)
		if name == "math" {
			hasMath = true
		}
	}
	if hasMath {
		installDeterministicRandom(L, seed)
	}
	return L
}

func deterministicSeed(code string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(code))
	return int64(h.Sum64() & 0x7fffffffffffffff)
}

// installDeterministicRandom replaces math.random so repeated runs of the
// same script print the same thing.
func installDeterministicRandom(L *lua.LState, seed int64) {
	mathTbl, ok := L.GetGlobal("math").(*lua.LTable)
	if !ok || mathTbl == nil {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	mathTbl.RawSetString("random", L.NewFunction(func(L *lua.LState) int {
		switch L.GetTop() {
		case 0:
			L.Push(lua.LNumber(rng.Float64()))
			return 1
		case 1:
			max := L.CheckInt(1)
			if max < 1 {
				L.ArgError(1, "interval is empty")
				return 0
			}
			L.Push(lua.LNumber(rng.Intn(max) + 1))
			return 1
		default:
			min := L.CheckInt(1)
			max := L.CheckInt(2)
			if max < min {
				L.ArgError(2, "interval is empty")
				return 0
			}
			L.Push(lua.LNumber(rng.Intn(max-min+1) + min))
			return 1
		}
	}))
	mathTbl.RawSetString("randomseed", L.NewFunction(func(L *lua.LState) int {
		return 0
	}))
}
