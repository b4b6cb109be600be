package harness

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"

	"github.com/oskoss/embedded-sim/device"
)

const VerificationMethod = "automated"

type CaseResult struct {
	Challenge   string        `json:"challenge"`
	Case        string        `json:"case"`
	Description string        `json:"description"`
	Passed      bool          `json:"passed"`
	Failures    []string      `json:"failures,omitempty"`
	Pins        map[int]bool  `json:"pins,omitempty"`
	Sensors     []string      `json:"sensors,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

//Report is the outcome of one harness run
type Report struct {
	Success            bool         `json:"success"`
	VerificationMethod string       `json:"verification_method"`
	StartedAt          time.Time    `json:"started_at"`
	Total              int          `json:"total"`
	Passed             int          `json:"passed"`
	Failed             int          `json:"failed"`
	Results            []CaseResult `json:"results"`
}

//ExitCode is 0 when every case passed and 1 otherwise
func (r *Report) ExitCode() int {
	if r.Success {
		return 0
	}
	return 1
}

//Runner executes challenges and writes a verbose listing to Out
type Runner struct {
	Out io.Writer
}

func NewRunner(out io.Writer) *Runner {
	if out == nil {
		out = ioutil.Discard
	}
	return &Runner{Out: out}
}

func (r *Runner) Run(challenges []Challenge) *Report {
	out := r.Out
	if out == nil {
		out = ioutil.Discard
	}
	report := &Report{
		VerificationMethod: VerificationMethod,
		StartedAt:          time.Now().UTC(),
		Results:            []CaseResult{},
	}

	for _, challenge := range challenges {
		for _, c := range challenge.Cases {
			result := runCase(challenge.Name, c)
			report.Results = append(report.Results, result)
			report.Total++
			if result.Passed {
				report.Passed++
				fmt.Fprintf(out, "%s (%s) ... ok\n", c.Name, challenge.Name)
				continue
			}
			report.Failed++
			fmt.Fprintf(out, "%s (%s) ... FAIL\n", c.Name, challenge.Name)
			for _, failure := range result.Failures {
				fmt.Fprintf(out, "    %s\n", failure)
			}
			log.WithFields(log.Fields{
				"challenge": challenge.Name,
				"case":      c.Name,
				"failures":  len(result.Failures),
			}).Warn("case failed")
		}
	}
	report.Success = report.Failed == 0

	fmt.Fprintf(out, "\nRan %d cases in %s\n\n", report.Total, time.Since(report.StartedAt).Round(time.Millisecond))
	if report.Success {
		fmt.Fprintln(out, "OK")
	} else {
		fmt.Fprintf(out, "FAILED (failures=%d)\n", report.Failed)
	}
	return report
}

//runCase gives every case its own device so no state leaks between cases
func runCase(challenge string, c Case) (result CaseResult) {
	rec := &recorder{}
	dev := device.NewMockDevice()
	start := time.Now()
	result = CaseResult{
		Challenge:   challenge,
		Case:        c.Name,
		Description: c.Description,
	}
	defer func() {
		if p := recover(); p != nil {
			rec.failures = append(rec.failures, fmt.Sprintf("panic: %v", p))
		}
		result.Duration = time.Since(start)
		result.Failures = rec.failures
		result.Passed = len(rec.failures) == 0
		result.Sensors = dev.Sensors()
		if pins := dev.Pins(); len(pins) > 0 {
			result.Pins = make(map[int]bool, len(pins))
			for _, pin := range pins {
				result.Pins[pin] = dev.GetPin(pin)
			}
		}
	}()

	if c.Run == nil {
		rec.Fatalf("case %s has nothing to run", c.Name)
		return
	}
	c.Run(gomega.NewWithT(rec), dev)
	return
}
