package slice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/slicer/pkg/index"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Expr is a slice in begin:finish:stride notation. A zero Stride is kept as
// is and rejected with ErrZeroStride when the expression is applied.
type Expr struct {
	Begin  int
	Finish index.Bound
	Stride int
}

// ParseExpr parses "begin:finish" or "begin:finish:stride". Any part may be
// empty: begin defaults to 0, finish to index.End and stride to 1.
func ParseExpr(s string) (Expr, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Expr{}, fmt.Errorf("%w %q: expected begin:finish[:stride]", ErrInvalidExpr, s)
	}

	x := Expr{Finish: index.End, Stride: 1}
	var errs field.ErrorList
	var err error

	if p := strings.TrimSpace(parts[0]); p != "" {
		if x.Begin, err = strconv.Atoi(p); err != nil {
			errs = append(errs, field.Invalid(field.NewPath("begin"), p, "must be an integer"))
		}
	}
	if p := strings.TrimSpace(parts[1]); p != "" {
		f, err := strconv.Atoi(p)
		if err != nil {
			errs = append(errs, field.Invalid(field.NewPath("finish"), p, "must be an integer"))
		}
		x.Finish = index.At(f)
	}
	if len(parts) == 3 {
		if p := strings.TrimSpace(parts[2]); p != "" {
			if x.Stride, err = strconv.Atoi(p); err != nil {
				errs = append(errs, field.Invalid(field.NewPath("stride"), p, "must be an integer"))
			}
		}
	}

	if len(errs) > 0 {
		return Expr{}, fmt.Errorf("%w %q: %w", ErrInvalidExpr, s, errs.ToAggregate())
	}
	return x, nil
}

func (x Expr) String() string {
	var sb strings.Builder
	if x.Begin != 0 {
		sb.WriteString(strconv.Itoa(x.Begin))
	}
	sb.WriteByte(':')
	if !x.Finish.IsEnd() {
		sb.WriteString(x.Finish.String())
	}
	if x.Stride != 1 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(x.Stride))
	}
	return sb.String()
}
