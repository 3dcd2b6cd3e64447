package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// pflag omits the value placeholder in help output for this type name.
	switchFlagTypeName      = "bool"
	switchFlagEnabledValue  = "true"
	switchFlagAcceptedList  = "true, false, yes, no, on, off, 1, 0"
	switchFlagInvalidFormat = "invalid value %q for --%s; accepted values: %s"
)

// switchFlagLiterals lists the values accepted after "--flag=". A bare "--flag"
// enables the switch; a following argument is always a path, never a value.
var switchFlagLiterals = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"1":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"0":     false,
}

// switchFlagValue backs arbol's on/off flags such as --all and --copy.
type switchFlagValue struct {
	target *bool
	name   string
}

func (value *switchFlagValue) Set(input string) error {
	enabled, known := switchFlagLiterals[strings.ToLower(input)]
	if !known {
		return fmt.Errorf(switchFlagInvalidFormat, input, value.name, switchFlagAcceptedList)
	}
	*value.target = enabled
	return nil
}

func (value *switchFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *switchFlagValue) Type() string {
	return switchFlagTypeName
}

// registerSwitchFlag adds an on/off flag to flagSet. The flag never consumes the
// next argument, so "--all 1" lists the directory "1".
func registerSwitchFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	*target = defaultValue
	flag := flagSet.VarPF(&switchFlagValue{target: target, name: name}, name, shorthand, usage)
	flag.DefValue = strconv.FormatBool(defaultValue)
	flag.NoOptDefVal = switchFlagEnabledValue
}
