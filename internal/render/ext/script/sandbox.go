package script

import lua "github.com/yuin/gopher-lua"

// sandbox restricts an LState to safe operations: no filesystem or network
// access, no loading of arbitrary code from disk, a module whitelist.
// Condensed from the teacher's plugin sandbox (internal/plugin/lua/sandbox.go)
// down to what a pure variable-evaluation script needs — no capability
// grants, since a render extension never needs filesystem/network/shell
// access (the "shell" extension is a separate, explicitly named one).
type sandbox struct {
	L *lua.LState
}

func newSandbox(L *lua.LState) *sandbox {
	return &sandbox{L: L}
}

var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
	"utf8":   true,
}

// install removes the dangerous globals and replaces require with a
// whitelist-checking version.
func (s *sandbox) install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "os", "io"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	original := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safeModules[name] {
			L.RaiseError("script: module %q is not permitted", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}
