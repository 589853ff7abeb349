package lang

import "testing"

func TestElixirSimpleFunction(t *testing.T) {
	s := &ElixirScanner{}
	code := "defmodule Greeter do\n" + // 1
		"  def hello(name) do\n" + // 2
		"    IO.puts(name)\n" + // 3
		"  end\n" + // 4
		"end\n" // 5

	funcs := s.ParseFunctions(code)
	if len(funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(funcs))
	}
	f := funcs[0]
	if f.Name != "hello" || f.StartLine != 2 || f.LineCount != 3 {
		t.Errorf("unexpected record: %+v", f)
	}
}

func TestElixirPrivateAndMacro(t *testing.T) {
	s := &ElixirScanner{}
	code := "defp helper(x) do\n" +
		"  x * 2\n" +
		"end\n" +
		"defmacro assert_ok(expr) do\n" +
		"  quote do\n" +
		"    {:ok, _} = unquote(expr)\n" +
		"  end\n" +
		"end\n"

	funcs := s.ParseFunctions(code)
	if len(funcs) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(funcs))
	}
	if funcs[0].Name != "helper" || funcs[1].Name != "assert_ok" {
		t.Errorf("unexpected names: %q, %q", funcs[0].Name, funcs[1].Name)
	}
}

func TestElixirSingleLineDoSkipped(t *testing.T) {
	s := &ElixirScanner{}
	code := "def double(x), do: x * 2\n" +
		"def triple(x), do: x * 3\n"

	if funcs := s.ParseFunctions(code); len(funcs) != 0 {
		t.Errorf("expected no records for do: clauses, got %d", len(funcs))
	}
}

func TestElixirNestingKeywordHeuristic(t *testing.T) {
	s := &ElixirScanner{}
	code := "def route(conn) do\n" + // 1
		"  case conn.method do\n" + // 2
		"    :get -> fetch(conn)\n" + // 3
		"    :post -> create(conn)\n" + // 4
		"  end\n" + // 5
		"end\n" // 6

	funcs := s.ParseFunctions(code)
	if len(funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(funcs))
	}
	if funcs[0].LineCount != 6 {
		t.Errorf("expected 6 lines, got %d", funcs[0].LineCount)
	}
	if funcs[0].MaxNesting < 1 {
		t.Errorf("expected case/do to contribute nesting, got %d", funcs[0].MaxNesting)
	}
}

func TestElixirAnonymousFunctionHeuristic(t *testing.T) {
	s := &ElixirScanner{}
	code := "def apply_all(items) do\n" +
		"  Enum.map(items, fn item -> item * 2 end)\n" +
		"end\n"

	funcs := s.ParseFunctions(code)
	if len(funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(funcs))
	}
	if funcs[0].MaxNesting < 1 {
		t.Errorf("expected fn -> to contribute nesting, got %d", funcs[0].MaxNesting)
	}
}

func TestElixirCommentStripped(t *testing.T) {
	s := &ElixirScanner{}
	code := "def stable() do\n" + // 1
		"  # end\n" + // 2: "end" in comment must not close
		"  :ok\n" + // 3
		"end\n" // 4

	funcs := s.ParseFunctions(code)
	if len(funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(funcs))
	}
	if funcs[0].LineCount != 4 {
		t.Errorf("expected 4 lines, got %d", funcs[0].LineCount)
	}
}

func TestElixirEOFInclusive(t *testing.T) {
	s := &ElixirScanner{}
	code := "def unbalanced() do\n" +
		"  :ok"

	funcs := s.ParseFunctions(code)
	if len(funcs) != 1 {
		t.Fatalf("expected 1 function, got %d", len(funcs))
	}
	if funcs[0].LineCount != 2 {
		t.Errorf("expected 2 lines, got %d", funcs[0].LineCount)
	}
}

func TestElixirShouldSkip(t *testing.T) {
	s := &ElixirScanner{}
	if !s.ShouldSkip("/app/deps/phoenix/lib/phoenix.ex") {
		t.Error("expected deps to be skipped")
	}
	if !s.ShouldSkip("/app/_build/dev/lib/app.ex") {
		t.Error("expected _build to be skipped")
	}
	if s.ShouldSkip("/app/lib/app.ex") {
		t.Error("expected lib source not to be skipped")
	}
}
