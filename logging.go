package Scoped_String

import (
	"os"

	"github.com/sirupsen/logrus"
)

// init routes logrus output to stdout for easier log capture.
func init() {
	logrus.SetOutput(os.Stdout)
}

// Dump logs a view's shape and rendered content at debug level. It is a
// debugging aid only and forces the hash computation as a side effect.
func Dump(label string, v *View) {
	logrus.Debugf("view %s: size=%d hash=%#08x data=%q", label, v.Size(), v.Hash(), v.String())
}
