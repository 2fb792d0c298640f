package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// cityFlag accepts a starting city either as a numeric index ("2") or as its
// display letter ("C"). The zero value is city 0 (A).
type cityFlag int

var _ pflag.Value = (*cityFlag)(nil)

func (c *cityFlag) String() string { return strconv.Itoa(int(*c)) }

func (c *cityFlag) Type() string { return "city" }

func (c *cityFlag) Set(s string) error {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		*c = cityFlag(s[0] - 'A')

		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("invalid city %q (want an index or a letter A-Z)", s)
	}
	*c = cityFlag(v)

	return nil
}
