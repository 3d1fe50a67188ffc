// Package behavior provides probes that determine how a filesystem treats
// modes written through the filesystem package.
package behavior

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/modestat/modestat/pkg/filesystem"
	"github.com/modestat/modestat/pkg/hostmode"
	"github.com/modestat/modestat/pkg/logging"
	"github.com/modestat/modestat/pkg/must"
)

const (
	// probeNamePrefix is the prefix used for entries created by probes.
	probeNamePrefix = filesystem.TemporaryNamePrefix + "mode-probe-"
)

// ProbePermissions are the permission sets applied (in order) to the probe
// directory. The first four contain only access bits and should be preserved
// by any POSIX filesystem, while the last two exercise the sticky and
// set-group-ID bits.
var ProbePermissions = []hostmode.FilePermission{
	0700,
	0750,
	0755,
	0555,
	01777,
	02755,
}

// ProbeReport describes how a filesystem handled probe entries.
type ProbeReport struct {
	// DirectoryKindPreserved indicates whether a directory created with Mkdir
	// was reported as a directory by Lstat.
	DirectoryKindPreserved bool
	// FIFOSupported indicates whether a FIFO could be created with Mknod and
	// was reported as a FIFO by Lstat.
	FIFOSupported bool
	// Unpreserved lists the elements of ProbePermissions that weren't reported
	// back exactly after Chmod.
	Unpreserved []hostmode.FilePermission
}

// probeName generates a unique probe entry name.
func probeName(purpose string) string {
	return probeNamePrefix + purpose + "-" + uuid.New().String()
}

// ProbeModeRoundTrip creates temporary entries inside directory and verifies
// that modes written through system are reported back by it unchanged. All
// entries are removed before returning.
func ProbeModeRoundTrip(system *filesystem.System, directory string) (*ProbeReport, error) {
	logger := logging.RootLogger.Sublogger("probe")
	report := &ProbeReport{}

	// Create the probe directory and ensure that it's removed.
	probeDirectory := filepath.Join(directory, probeName("directory"))
	initial := hostmode.Mode{Kind: hostmode.FileKindDirectory, Permissions: 0700}
	if err := system.Mkdir(probeDirectory, initial); err != nil {
		return nil, errors.Wrap(err, "unable to create probe directory")
	}
	defer must.OSRemove(probeDirectory, logger)

	// Restore the initial permissions before removal, so that a directory left
	// behind by a failed removal isn't world-writable.
	defer func() {
		must.Succeed(system.Chmod(probeDirectory, initial), "restoring probe directory permissions", logger)
	}()

	// Check that the directory kind is reported.
	if metadata, err := system.Lstat(probeDirectory); err != nil {
		return nil, errors.Wrap(err, "unable to query probe directory")
	} else if kind, err := metadata.Kind(); err != nil {
		logger.Debugf("Unable to decode probe directory kind: %v", err)
	} else {
		report.DirectoryKindPreserved = kind == hostmode.FileKindDirectory
	}

	// Attempt to create a FIFO. Hosts and filesystems are allowed to reject
	// FIFO creation, in which case we simply record the lack of support.
	fifo := filepath.Join(directory, probeName("fifo"))
	fifoMode := hostmode.Mode{Kind: hostmode.FileKindFIFO, Permissions: 0600}
	if err := system.Mknod(fifo, fifoMode, 0); err != nil {
		var osError *filesystem.OSError
		if !errors.As(err, &osError) {
			return nil, errors.Wrap(err, "unable to create probe FIFO")
		}
		logger.Debugf("FIFO creation rejected: %v", err)
	} else {
		defer must.OSRemove(fifo, logger)
		if metadata, err := system.Lstat(fifo); err != nil {
			return nil, errors.Wrap(err, "unable to query probe FIFO")
		} else if kind, err := metadata.Kind(); err != nil {
			logger.Debugf("Unable to decode probe FIFO kind: %v", err)
		} else {
			report.FIFOSupported = kind == hostmode.FileKindFIFO
		}
	}

	// Apply each permission set to the probe directory and check whether or
	// not it's reported back exactly.
	for _, permissions := range ProbePermissions {
		mode := hostmode.Mode{Kind: hostmode.FileKindDirectory, Permissions: permissions}
		if err := system.Chmod(probeDirectory, mode); err != nil {
			return nil, errors.Wrapf(err, "unable to set probe directory permissions to %s", permissions.Octal())
		}
		metadata, err := system.Lstat(probeDirectory)
		if err != nil {
			return nil, errors.Wrap(err, "unable to query probe directory permissions")
		}
		if reported := metadata.Permissions(); reported != permissions {
			logger.Debugf("Permissions %s reported as %s", permissions.Octal(), reported.Octal())
			report.Unpreserved = append(report.Unpreserved, permissions)
		}
	}

	// Success.
	return report, nil
}
