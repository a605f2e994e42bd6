// Copyright (c) 2026, SUSE LLC.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/SUSE/tunecheck/pkg/defaults"
	"github.com/SUSE/tunecheck/pkg/fact/file"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
	filePathTunedProfile    = "/etc/tuned/active_profile"
)

// HostProvider reads facts from the local host: /etc/os-release, the rpm
// database, systemd over D-Bus, and tuned state files.
type HostProvider struct {
	// ReleasePath overrides the os-release location, used in tests.
	ReleasePath string

	// TunedProfilePath overrides the tuned active_profile location.
	TunedProfilePath string
}

// NewHostProvider creates a provider reading from the standard locations.
func NewHostProvider() *HostProvider {
	return &HostProvider{}
}

// OSRelease reads OS identification from /etc/os-release, falling back to
// /usr/lib/os-release per the freedesktop.org spec.
func (h *HostProvider) OSRelease(ctx context.Context) (OSRelease, error) {
	if err := ctx.Err(); err != nil {
		return OSRelease{}, err
	}

	path := h.ReleasePath
	if path == "" {
		path = filePathReleasePrimary
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filePathReleaseFallback
		}
	}

	parser := file.NewParser(file.WithTrimChars(`"'`))
	params, err := parser.Map(path)
	if err != nil {
		return OSRelease{}, fmt.Errorf("failed to read os release from %s: %w", path, err)
	}

	rel := OSRelease{
		ID:         params["ID"],
		VersionID:  params["VERSION_ID"],
		PrettyName: params["PRETTY_NAME"],
	}

	slog.Debug("read os release", "id", rel.ID, "versionId", rel.VersionID)
	return rel, nil
}

// Package queries the rpm database for the named package. A query failure
// with a nonzero exit status means the package is not installed; any other
// failure (rpm missing, database unreadable) is returned as an error.
func (h *HostProvider) Package(ctx context.Context, name string) (Package, error) {
	rpmPath, err := exec.LookPath("rpm")
	if err != nil {
		return Package{}, fmt.Errorf("rpm not found in PATH: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.PackageQueryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, rpmPath, "-q", "--queryformat", "%{VERSION}-%{RELEASE}", name)
	output, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			slog.Debug("package not installed", "package", name)
			return Package{Name: name}, nil
		}
		return Package{}, fmt.Errorf("failed to query rpm for %s: %w", name, err)
	}

	pkg := Package{
		Name:      name,
		Installed: true,
		Version:   strings.TrimSpace(string(output)),
	}

	slog.Debug("queried package", "package", name, "version", pkg.Version)
	return pkg, nil
}

// Service reads the active and enabled state of a systemd unit over D-Bus.
func (h *HostProvider) Service(ctx context.Context, name string) (Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ServiceQueryTimeout)
	defer cancel()

	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return Service{}, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	props, err := conn.GetAllPropertiesContext(ctx, name)
	if err != nil {
		return Service{}, fmt.Errorf("failed to get unit properties for %s: %w", name, err)
	}

	svc := Service{
		Name:    name,
		Active:  propString(props, "ActiveState") == "active",
		Enabled: isEnabledState(propString(props, "UnitFileState")),
	}

	slog.Debug("read service state",
		"service", name,
		"active", svc.Active,
		"enabled", svc.Enabled)
	return svc, nil
}

// ActiveProfile reads the active tuned profile from /etc/tuned. A missing
// file means tuned has no profile applied, which is a valid state.
func (h *HostProvider) ActiveProfile(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := h.TunedProfilePath
	if path == "" {
		path = filePathTunedProfile
	}

	line, err := file.NewParser().FirstLine(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read active tuned profile: %w", err)
	}
	return line, nil
}

// ConfigValues reads the named variables from a sysconfig-style file.
// Every requested key gets an entry; absent variables map to "".
func (h *HostProvider) ConfigValues(ctx context.Context, path string, keys ...string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := file.NewParser(file.WithTrimChars(`"'`))
	params, err := parser.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	result := make(map[string]string, len(keys))
	for _, key := range keys {
		result[key] = params[key]
	}
	return result, nil
}

func propString(props map[string]interface{}, key string) string {
	if v, ok := props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// isEnabledState maps a systemd UnitFileState to an enabled boolean.
// Runtime-enabled units count as enabled; linked, masked, static and
// disabled units do not.
func isEnabledState(state string) bool {
	switch state {
	case "enabled", "enabled-runtime":
		return true
	default:
		return false
	}
}
