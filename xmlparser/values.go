package xmlparser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Int converts a scalar value to int64.
func (p *Param) Int() (int64, error) {
	v, err := p.Value()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, p.convErr("integer", v, err)
	}
	return n, nil
}

// Float converts a scalar value to float64.
func (p *Param) Float() (float64, error) {
	v, err := p.Value()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, p.convErr("float", v, err)
	}
	return f, nil
}

// Bool converts a scalar value using strconv.ParseBool rules.
func (p *Param) Bool() (bool, error) {
	v, err := p.Value()
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, p.convErr("bool", v, err)
	}
	return b, nil
}

// Duration converts a scalar value like "900s", "250ms", "1h30m" or "2d".
func (p *Param) Duration() (time.Duration, error) {
	v, err := p.Value()
	if err != nil {
		return 0, err
	}
	d, err := parseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, p.convErr("duration", v, err)
	}
	return d, nil
}

// IntList converts every list element to int64.
func (p *Param) IntList() ([]int64, error) {
	elems, err := p.ValueList()
	if err != nil {
		return nil, err
	}
	res := make([]int64, 0, len(elems))
	for i, e := range elems {
		n, err := strconv.ParseInt(e, 10, 64)
		if err != nil {
			return nil, p.convErr(fmt.Sprintf("integer (element %d)", i), e, err)
		}
		res = append(res, n)
	}
	return res, nil
}

func (p *Param) convErr(what, v string, err error) error {
	return &ValueError{ParseError{
		Message: fmt.Sprintf("parameter '%s': invalid %s %q: %v", p.name, what, v, err),
		Pos:     p.pos,
		Cause:   err,
	}}
}

// parseDuration accepts time.ParseDuration syntax plus a whole-day suffix
// ("1d").
func parseDuration(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "d") {
		n, err := strconv.ParseInt(strings.TrimSuffix(s, "d"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid numeric part %q: %w", strings.TrimSuffix(s, "d"), err)
		}
		const day = 24 * time.Hour
		if n > math.MaxInt64/int64(day) || n < math.MinInt64/int64(day) {
			return 0, fmt.Errorf("%d days is out of range", n)
		}
		return time.Duration(n) * day, nil
	}
	return time.ParseDuration(s)
}
