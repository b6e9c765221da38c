// Package skylog classifies observatory controller log lines and aggregates
// a night's log into a report of exposures, operation outcomes, timings and
// image-quality measurements.
//
// Quick start:
//
//	s := skylog.New(skylog.WithCharset("windows-1252"))
//
//	r, err := s.AnalyzeFile(ctx, "Logs/20240312.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range r.Exposures {
//	    fmt.Println(e.Exposure, e.Count) // R 30s bin2 14
//	}
//
//	ev := s.Classify("21:04:10 SlewTarget 12.5")
//	fmt.Println(ev.Kind, ev.Value) // SlewTarget 12.5
//
// Classification is line-local and deterministic. A Skylog is safe for
// concurrent use.
package skylog
