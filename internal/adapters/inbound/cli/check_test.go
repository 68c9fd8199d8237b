package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/inbound/cli"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefinition = `
packages:
  - pattern: 'com\.${company}(\.[a-z]+)*'
    files:
      - pattern: '[A-Z][A-Za-z0-9]*\.java'
`

const testConfig = `
definition_sources:
  - ConventionDefinition.yaml
placeholders:
  company: acme
`

func writeProjectFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newProject creates a project with a config, a definition and the given
// source files below src/main/java.
func newProject(t *testing.T, sources ...string) string {
	t.Helper()
	dir := t.TempDir()
	writeProjectFile(t, dir, ".fnwatchdog.yaml", testConfig)
	writeProjectFile(t, dir, "ConventionDefinition.yaml", testDefinition)
	for _, s := range sources {
		writeProjectFile(t, dir, "src/main/java/"+s, "")
	}
	// resources are never scanned by default
	writeProjectFile(t, dir, "src/main/resources/whatever/config.properties", "")
	return dir
}

func runCheck(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"check"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommand_CompliantProject(t *testing.T) {
	dir := newProject(t, "com/acme/Main.java", "com/acme/shop/Cart.java")

	stdout, _, err := runCheck(t, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS")
	assert.Contains(t, stdout, "No violations found.")
}

func TestCheckCommand_ViolationsFailTheRun(t *testing.T) {
	dir := newProject(t, "com/acme/Main.java", "com/acme/bad_name.java", "org/other/Thing.java")

	stdout, stderr, err := runCheck(t, "--path", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPolicyFailure))
	assert.Contains(t, stdout, "FAIL")
	assert.Contains(t, stdout, "bad_name.java")
	assert.Contains(t, stdout, "org.other")
	assert.Contains(t, stderr, `The package "org.other" violates the naming conventions`)
	assert.Contains(t, stderr, `The file "bad_name.java" in package "com.acme" violates the naming conventions`)
}

func TestCheckCommand_ReportOnly(t *testing.T) {
	dir := newProject(t, "org/other/Thing.java")

	stdout, stderr, err := runCheck(t, "--path", dir, "--fail-on-violation=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PASS")
	assert.Contains(t, stderr, "org.other")
}

func TestCheckCommand_JSON(t *testing.T) {
	dir := newProject(t, "org/other/Thing.java")

	stdout, _, err := runCheck(t, "--path", dir, "--json")
	require.ErrorIs(t, err, domain.ErrPolicyFailure)

	var result domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result), "output should be valid JSON")
	assert.Equal(t, domain.GateFail, result.Gate)
	assert.True(t, result.Result.HasViolations)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, domain.FindingPackage, result.Findings[0].Kind)
	assert.Equal(t, "org.other", result.Findings[0].Package)
	assert.Equal(t, []string{filepath.Join(dir, "src", "main", "java")}, result.Plan.ScanRoots)
}

func TestCheckCommand_MissingDefinitionSources(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCheck(t, "--path", dir)
	require.Error(t, err)

	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, domain.MissingDefinitionSources, cfgErr.Kind)
	assert.Contains(t, err.Error(), `"definition_sources" must not be null`)
	assert.Empty(t, stdout)
}

func TestCheckCommand_GermanMessages(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCheck(t, "--path", dir, "--lang", "de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "darf nicht null sein")
}

func TestCheckCommand_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, ".fnwatchdog.yaml", "{{{invalid yaml")

	_, _, err := runCheck(t, "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid configuration file .fnwatchdog.yaml")
}

func TestCheckCommand_FlagsOverrideFile(t *testing.T) {
	dir := newProject(t, "org/other/Thing.java")
	altRoot := filepath.Join(dir, "alt")
	writeProjectFile(t, dir, "alt/com/globex/Main.java", "")

	stdout, _, err := runCheck(t, "--path", dir,
		"--root", altRoot,
		"--placeholder", "company=globex",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, altRoot)
	assert.NotContains(t, stdout, "org.other")
}

func TestCheckCommand_DefinitionFlag(t *testing.T) {
	dir := newProject(t, "org/other/Thing.java")
	def := filepath.Join(t.TempDir(), "open.yaml")
	writeProjectFile(t, filepath.Dir(def), "open.yaml", "packages:\n  - pattern: '.*'\n")

	_, _, err := runCheck(t, "--path", dir, "--definition", def)
	require.NoError(t, err)
}

func TestCheckCommand_NoSourceRoots(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, ".fnwatchdog.yaml", testConfig)
	writeProjectFile(t, dir, "ConventionDefinition.yaml", testDefinition)

	stdout, stderr, err := runCheck(t, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No source roots scanned.")
	assert.Contains(t, stderr, "No source roots defined")
}

func TestCheckCommand_VerboseListsRoots(t *testing.T) {
	dir := newProject(t, "com/acme/Main.java")

	_, stderr, err := runCheck(t, "--path", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Found source root: "+filepath.Join(dir, "src", "main", "java"))
}

func TestCheckCommand_QuietByDefault(t *testing.T) {
	dir := newProject(t, "com/acme/Main.java")

	_, stderr, err := runCheck(t, "--path", dir)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Found source root")
}

func TestCheckCommand_Parallel(t *testing.T) {
	dir := newProject(t, "com/acme/Main.java")
	writeProjectFile(t, dir, "src/main/kotlin/org/other/Thing.kt", "")

	stdout, _, err := runCheck(t, "--path", dir, "--parallel", "4", "--json")
	require.ErrorIs(t, err, domain.ErrPolicyFailure)

	var result domain.RunResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Result.Reports, 2)
	assert.Equal(t, filepath.Join(dir, "src", "main", "java"), result.Result.Reports[0].Root)
	assert.Equal(t, filepath.Join(dir, "src", "main", "kotlin"), result.Result.Reports[1].Root)
}

func TestCheckCommand_UnknownLogFormat(t *testing.T) {
	_, _, err := runCheck(t, "--path", t.TempDir(), "--log-format", "xml")
	assert.Error(t, err)
}

func TestCheckCommand_RejectsArgs(t *testing.T) {
	_, _, err := runCheck(t, "extra")
	assert.Error(t, err)
}
