// Package report collects the outcome of checking many path arguments and
// writes them as text or JSON.
//
// # Basic Usage
//
//	result := &report.Result{}
//	for _, arg := range args {
//		p, err := handler(arg)
//		if err != nil {
//			result.Reject("file", arg, err)
//			continue
//		}
//		result.Accept("file", arg, p.String())
//	}
//	_ = report.NewReporter(os.Stdout, report.FormatText).Report(result)
package report
