package script

import (
	"math"

	"github.com/flarebyte/gcd/internal/gcd"
	lua "github.com/yuin/gopher-lua"
)

// MaxExact is the largest integer a Lua number holds without rounding.
const MaxExact = 1 << 53

func installBindings(L *lua.LState, args []uint64) {
	L.SetGlobal("gcd", L.NewFunction(luaGCD))
	L.SetGlobal("gcd_fold", L.NewFunction(luaFold))
	tbl := L.NewTable()
	for i, n := range args {
		tbl.RawSetInt(i+1, lua.LNumber(float64(n)))
	}
	L.SetGlobal("args", tbl)
}

func luaGCD(L *lua.LState) int {
	a := checkOperand(L, 1)
	b := checkOperand(L, 2)
	g, err := gcd.GCD(a, b)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(float64(g)))
	return 1
}

func luaFold(L *lua.LState) int {
	tbl := L.CheckTable(1)
	n := tbl.Len()
	nums := make([]uint64, 0, n)
	for i := 1; i <= n; i++ {
		v, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok || !isExactUint(float64(v)) {
			L.ArgError(1, "expected an array of non-negative integers")
			return 0
		}
		nums = append(nums, uint64(v))
	}
	g, err := gcd.Fold(nums)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(float64(g)))
	return 1
}

func checkOperand(L *lua.LState, n int) uint64 {
	f := float64(L.CheckNumber(n))
	if !isExactUint(f) {
		L.ArgError(n, "expected a non-negative integer")
		return 0
	}
	return uint64(f)
}

func isExactUint(f float64) bool {
	return f >= 0 && f <= MaxExact && f == math.Trunc(f)
}
