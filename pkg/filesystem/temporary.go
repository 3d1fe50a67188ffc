package filesystem

const (
	// TemporaryNamePrefix is the file name prefix used for all temporary files
	// and directories created by modestat (e.g. by behavior probes). It may be
	// suffixed with additional elements if desired.
	TemporaryNamePrefix = ".modestat-temporary-"
)
