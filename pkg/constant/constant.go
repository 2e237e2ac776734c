// SPDX-FileCopyrightText: 2025 k0s authors
// SPDX-License-Identifier: Apache-2.0

package constant

const (
	// CloudConfigPathDefault is the main cloud config file
	CloudConfigPathDefault = "/etc/cloud/cloud.cfg"
	// CloudConfigDirDefault holds drop-in *.cfg files merged on top of the main config
	CloudConfigDirDefault = "/etc/cloud/cloud.cfg.d"
	// CloudDirDefault is the artifact root holding all generated host state
	CloudDirDefault = "/var/lib/cloud/"
	// LogFileDefault is the default log file
	LogFileDefault = "/var/log/cloud-init.log"
	// OutputConfigDefault redirects stdout and stderr of all stages to the output log
	OutputConfigDefault = "| tee -a /var/log/cloud-init-output.log"
	// CleanScriptsDirDefault holds executables run on every clean
	CleanScriptsDirDefault = "/etc/cloud/clean.d"
	// MachineIDFileDefault is the persisted machine identity
	MachineIDFileDefault = "/etc/machine-id"

	// SeedDirName is the artifact root child holding the original provisioning input
	SeedDirName = "seed"
	// MachineIDUninitialized makes systemd regenerate the machine id on next boot
	MachineIDUninitialized = "uninitialized\n"
	// MachineIDFileMode is the mode of a reset machine id file
	MachineIDFileMode = 0444
)

// Config keys, as found in the cloud config files.
const (
	CloudDirKey        = "system_info.paths.cloud_dir"
	LogFileKey         = "def_log_file"
	OutputKey          = "output"
	CleanScriptsDirKey = "clean_scripts_dir"
	MachineIDFileKey   = "machine_id_file"
)
