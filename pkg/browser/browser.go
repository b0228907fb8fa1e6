// Copyright 2025 CardinalHQ, Inc
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

// Package browser opens URLs in the user's default browser.
package browser

import (
	"errors"
	"os/exec"
	"runtime"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Command returns the program and arguments that open url on goos.
func Command(goos, url string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "darwin":
		return "open", []string{url}, nil
	default:
		return "", nil, ErrUnsupportedPlatform
	}
}

// Starter launches a process without waiting for it.
type Starter func(name string, args ...string) error

func startProcess(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open opens url in the default browser for the current platform.
func Open(url string) error {
	return OpenWith(runtime.GOOS, url, startProcess)
}

func OpenWith(goos, url string, start Starter) error {
	name, args, err := Command(goos, url)
	if err != nil {
		return err
	}
	return start(name, args...)
}
