package harness

import (
	"fmt"
	"strings"
)

//recorder collects gomega failures instead of aborting the case
type recorder struct {
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failures = append(r.failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}
