package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	levelFlagTypeName            = "NUM"
	levelFlagConversionErrorText = "conversion of argument |%s| failed"
	levelFlagLeadingSpace        = " \t\n\v\f\r"
)

// levelFlagValue parses a non-negative integer flag and validates it on Set so that
// malformed values abort before any traversal starts. Leading whitespace is skipped;
// anything after the digits, trailing whitespace included, is a conversion error.
type levelFlagValue struct {
	target   *int
	validate func(int) error
}

func (value *levelFlagValue) Set(input string) error {
	parsed, parseError := strconv.Atoi(strings.TrimLeft(input, levelFlagLeadingSpace))
	if parseError != nil {
		return fmt.Errorf(levelFlagConversionErrorText, input)
	}
	if value.validate != nil {
		if validationError := value.validate(parsed); validationError != nil {
			return validationError
		}
	}
	*value.target = parsed
	return nil
}

func (value *levelFlagValue) String() string {
	if value == nil || value.target == nil {
		return "0"
	}
	return strconv.Itoa(*value.target)
}

func (value *levelFlagValue) Type() string {
	return levelFlagTypeName
}

func registerLevelFlag(flagSet *pflag.FlagSet, target *int, name string, shorthand string, defaultValue int, usage string, validate func(int) error) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagSet.VarP(&levelFlagValue{target: target, validate: validate}, name, shorthand, usage)
}
