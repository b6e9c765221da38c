package skylog

type options struct {
	charset     string
	pattern     string
	workers     int
	maxLineSize int
}

// Option configures a Skylog instance.
type Option func(*options)

// WithCharset sets the character set log files are decoded from, by IANA
// name ("windows-1252", "iso-8859-1", ...). A byte-order mark in the file
// always takes precedence. Default: "utf-8".
func WithCharset(name string) Option {
	return func(o *options) {
		o.charset = name
	}
}

// WithPattern sets the glob AnalyzeDir uses to select files. Default: "*.log".
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithWorkers bounds how many files AnalyzeDir reads at once. Default: 4.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxLineSize caps a single line in bytes. Longer lines fail the read.
// Default: 1 MiB.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		o.maxLineSize = n
	}
}

func defaultOptions() options {
	return options{
		charset:     "utf-8",
		pattern:     "*.log",
		workers:     4,
		maxLineSize: 1 << 20,
	}
}
