package integration

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"
)

const fakeDockerScript = `#!/bin/sh
printf '%s\n' "$@" > "$FAKE_DOCKER_ARGS_FILE"
if [ -n "$FAKE_DOCKER_STDERR" ]; then
  echo "$FAKE_DOCKER_STDERR" >&2
fi
exit "${FAKE_DOCKER_EXIT_CODE:-0}"
`

// FakeDocker is a docker executable that records its arguments and exits
// with FAKE_DOCKER_EXIT_CODE.
type FakeDocker struct {
	binDir   string
	argsFile string
}

func NewFakeDocker(dir string) FakeDocker {
	binDir := filepath.Join(dir, "bin")
	Expect(os.MkdirAll(binDir, 0755)).To(Succeed())
	Expect(os.WriteFile(filepath.Join(binDir, "docker"), []byte(fakeDockerScript), 0755)).To(Succeed())

	return FakeDocker{binDir: binDir, argsFile: filepath.Join(dir, "docker-args")}
}

func (f FakeDocker) Env(extra ...string) []string {
	return append([]string{
		"PATH=" + f.binDir + ":/usr/bin:/bin",
		"FAKE_DOCKER_ARGS_FILE=" + f.argsFile,
	}, extra...)
}

func (f FakeDocker) Invoked() bool {
	_, err := os.Stat(f.argsFile)
	return err == nil
}

func (f FakeDocker) Args() []string {
	contents, err := os.ReadFile(f.argsFile)
	Expect(err).NotTo(HaveOccurred())
	return strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n")
}
