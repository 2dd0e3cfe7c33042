package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethanthoma/effect/pkg/effect"
)

type signup struct {
	email string
	age   int
}

type rejection struct {
	field  string
	reason string
}

type account struct {
	Age  int
	Tier string
}

func settle[S any, E any](e effect.Effect[S, E]) []effect.Result[S, E] {
	var out []effect.Result[S, E]
	effect.Perform(e, func(r effect.Result[S, E]) {
		out = append(out, r)
	})
	return out
}

func nonEmpty(v string) (bool, string) {
	if v == "" {
		return false, "must not be empty"
	}
	return true, ""
}

func maxLen(n int) Rule[string] {
	return func(v string) (bool, string) {
		if len(v) > n {
			return false, "too long"
		}
		return true, ""
	}
}

func TestValidate_PassesValidValue(t *testing.T) {
	t.Parallel()
	e := Validate(effect.Continue[string, error]("hello"), nonEmpty)
	out := settle(e)
	if len(out) != 1 || !out[0].IsOk() || out[0].Value() != "hello" {
		t.Fatalf("expected success 'hello', got: %v", out)
	}
}

func TestValidate_RejectsInvalidValue(t *testing.T) {
	t.Parallel()
	e := Validate(effect.Continue[string, error](""), nonEmpty)
	out := settle(e)
	if len(out) != 1 || !out[0].IsEarly() || out[0].Early().Error() != "must not be empty" {
		t.Fatalf("expected 'must not be empty' early return, got: %v", out)
	}
}

func TestValidate_SkipsWhenAlreadyEarly(t *testing.T) {
	t.Parallel()
	ran := false
	e := Validate(effect.Throw[string, error](errors.New("upstream")), func(v string) (bool, string) {
		ran = true
		return true, ""
	})
	out := settle(e)
	if ran {
		t.Fatalf("rule should not run past an early return")
	}
	if len(out) != 1 || !out[0].IsEarly() || out[0].Early().Error() != "upstream" {
		t.Fatalf("expected the upstream early return, got: %v", out)
	}
}

func TestValidateWith_ShapesTypedRejection(t *testing.T) {
	t.Parallel()
	e := ValidateWith(
		effect.Continue[signup, rejection](signup{email: "bad", age: 30}),
		func(s signup) (bool, string) {
			if !strings.Contains(s.email, "@") {
				return false, "missing @"
			}
			return true, ""
		},
		func(errMsg string) rejection {
			return rejection{field: "email", reason: errMsg}
		})

	out := settle(e)
	if len(out) != 1 || !out[0].IsEarly() {
		t.Fatalf("expected an early return, got: %v", out)
	}
	if early := out[0].Early(); early.field != "email" || early.reason != "missing @" {
		t.Fatalf("expected typed email rejection, got: %+v", early)
	}
}

func TestValidateAll_BreakOnFirst(t *testing.T) {
	t.Parallel()
	executed := 0
	counting := func(inner Rule[string]) Rule[string] {
		return func(v string) (bool, string) {
			executed++
			return inner(v)
		}
	}

	e := ValidateAll(effect.Continue[string, error](""),
		true,
		counting(nonEmpty),
		counting(maxLen(3)))

	out := settle(e)
	if len(out) != 1 || !out[0].IsEarly() || out[0].Early().Error() != "must not be empty" {
		t.Fatalf("expected the first violation, got: %v", out)
	}
	if executed != 1 {
		t.Fatalf("expected only the first rule to execute, got %d", executed)
	}
}

func TestValidateAll_JoinsAllViolations(t *testing.T) {
	t.Parallel()
	e := ValidateAll(effect.Continue[string, error]("this is far too long"),
		false,
		nonEmpty,
		maxLen(5),
		func(v string) (bool, string) {
			if strings.Contains(v, " ") {
				return false, "no spaces allowed"
			}
			return true, ""
		})

	out := settle(e)
	if len(out) != 1 || !out[0].IsEarly() {
		t.Fatalf("expected a joined early return, got: %v", out)
	}

	violations := effect.GetErrors(out[0].Early())
	if len(violations) != 2 {
		t.Fatalf("expected 2 joined violations, got %d: %v", len(violations), violations)
	}
	if violations[0].Error() != "too long" || violations[1].Error() != "no spaces allowed" {
		t.Fatalf("expected [too long, no spaces allowed], got: %v", violations)
	}
}

func TestValidateAll_AllValid(t *testing.T) {
	t.Parallel()
	e := ValidateAll(effect.Continue[string, error]("ok"), false, nonEmpty, maxLen(5))
	out := settle(e)
	if len(out) != 1 || !out[0].IsOk() || out[0].Value() != "ok" {
		t.Fatalf("expected success 'ok', got: %v", out)
	}
}

func TestAnd_FirstRejectionWins(t *testing.T) {
	t.Parallel()
	record := signup{email: "nope", age: 12}

	emailCheck := ValidateWith(
		effect.Continue[signup, rejection](record),
		func(s signup) (bool, string) { return strings.Contains(s.email, "@"), "missing @" },
		func(errMsg string) rejection { return rejection{field: "email", reason: errMsg} })

	secondRan := false
	ageCheck := ValidateWith(
		effect.Tee(effect.Continue[signup, rejection](record), func(signup) { secondRan = true }),
		func(s signup) (bool, string) { return s.age >= 18, "must be adult" },
		func(errMsg string) rejection { return rejection{field: "age", reason: errMsg} })

	e := And(emailCheck, ageCheck, func(a signup, b signup) signup { return a })

	out := settle(e)
	if len(out) != 1 || !out[0].IsEarly() {
		t.Fatalf("expected an early return, got: %v", out)
	}
	if early := out[0].Early(); early.field != "email" {
		t.Fatalf("expected the email rejection to win, got: %+v", early)
	}
	if secondRan {
		t.Fatalf("second validation should not be consulted past the first rejection")
	}
}

func TestAnd_BothValidCombines(t *testing.T) {
	t.Parallel()
	first := effect.Continue[int, string](2)
	second := effect.Continue[int, string](3)

	out := settle(And(first, second, func(a int, b int) int { return a + b }))
	if len(out) != 1 || !out[0].IsOk() || out[0].Value() != 5 {
		t.Fatalf("expected combined success 5, got: %v", out)
	}
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()
	secondRan := false
	second := effect.Tee(effect.Continue[int, string](2), func(int) { secondRan = true })

	out := settle(Or(effect.Continue[int, string](1), second))
	if len(out) != 1 || !out[0].IsOk() || out[0].Value() != 1 {
		t.Fatalf("expected the first success, got: %v", out)
	}
	if secondRan {
		t.Fatalf("second effect should not run when the first succeeds")
	}
}

func TestOr_RecoversAndKeepsFirstReason(t *testing.T) {
	t.Parallel()
	recovered := settle(Or(effect.Throw[int, string]("primary down"), effect.Continue[int, string](9)))
	if len(recovered) != 1 || !recovered[0].IsOk() || recovered[0].Value() != 9 {
		t.Fatalf("expected recovery to 9, got: %v", recovered)
	}

	bothEarly := settle(Or(
		effect.Throw[int, string]("primary down"),
		effect.Throw[int, string]("fallback down")))
	if len(bothEarly) != 1 || !bothEarly[0].IsEarly() || bothEarly[0].Early() != "primary down" {
		t.Fatalf("expected the first reason to be kept, got: %v", bothEarly)
	}
}

func TestExprRule_CompilesAndEvaluates(t *testing.T) {
	t.Parallel()
	rule, err := ExprRule[int]("value > 0 && value < 100")
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	if valid, _ := rule(50); !valid {
		t.Fatalf("expected 50 to pass")
	}
	valid, errMsg := rule(-3)
	if valid || !strings.Contains(errMsg, "not satisfied") {
		t.Fatalf("expected a violation for -3, got valid=%v msg=%q", valid, errMsg)
	}
}

func TestExprRule_CompileErrorSurfaces(t *testing.T) {
	t.Parallel()
	if _, err := ExprRule[int]("value >"); err == nil {
		t.Fatalf("expected a compile error for a malformed expression")
	}
}

func TestExprRule_StructFieldAccess(t *testing.T) {
	t.Parallel()
	rule, err := ExprRule[account](`value.Age >= 18 && value.Tier != "banned"`)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	if valid, _ := rule(account{Age: 30, Tier: "basic"}); !valid {
		t.Fatalf("expected an adult basic account to pass")
	}
	valid, errMsg := rule(account{Age: 12, Tier: "basic"})
	if valid || !strings.Contains(errMsg, "not satisfied") {
		t.Fatalf("expected a violation for age 12, got valid=%v msg=%q", valid, errMsg)
	}
}

func TestExprRule_InPipeline(t *testing.T) {
	t.Parallel()
	rule, err := ExprRule[string](`value startsWith "user-"`)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	ok := settle(Validate(effect.Continue[string, error]("user-42"), rule))
	if len(ok) != 1 || !ok[0].IsOk() {
		t.Fatalf("expected 'user-42' to pass, got: %v", ok)
	}

	bad := settle(Validate(effect.Continue[string, error]("admin-1"), rule))
	if len(bad) != 1 || !bad[0].IsEarly() {
		t.Fatalf("expected 'admin-1' to be rejected, got: %v", bad)
	}
}
