package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
	assert.NoDirExists(t, filepath.Join(home, ".tamago"))
}

func TestSetupSeedsWalletAndURIs(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "setup")
	require.NoError(t, err)
	assert.Contains(t, stdout, "seeded wallet owner")

	stdout, _, err = executeCLI(t, home, "wallet", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wallet owner")
	assert.Contains(t, stdout, "fruit: 10")
	assert.Contains(t, stdout, "balance: 500")

	stdout, _, err = executeCLI(t, home, "pet", "uri", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bad\t")
	assert.Contains(t, stdout, "good\t")
	assert.FileExists(t, filepath.Join(home, ".tamago", "ledger.toml"))
}

func TestAssetDefineCountAndDuplicate(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "asset", "define", "1", "--uri", "ipfs://body", "--parts", "1,2")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "asset", "define", "1", "--uri", "ipfs://other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asset id already defined")

	stdout, _, err := executeCLI(t, home, "asset", "count")
	require.NoError(t, err)
	assert.Equal(t, "1\n", stdout)

	stdout, _, err = executeCLI(t, home, "asset", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "uri: ipfs://body")
	assert.Contains(t, stdout, "parts: 1,2")

	stdout, _, err = executeCLI(t, home, "asset", "list", "--csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "id,catalog_ref,equippable_group,uri,parts")
	assert.Contains(t, stdout, "1,,0,ipfs://body,1;2")
}

func TestAssetDefineRequiresRole(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "--as", "mallory", "asset", "define", "1", "--uri", "ipfs://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller lacks the required role")
}

func TestContributorFromConfigDefinesAssets(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `
[roles]
admin = ["owner"]
contributor = ["artist"]
`))

	_, _, err := executeCLI(t, home, "--as", "artist", "asset", "define", "5", "--uri", "ipfs://hat")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "--as", "artist", "wallet", "credit", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller lacks the required role")
}

func TestTokenAssetLifecycle(t *testing.T) {
	home := t.TempDir()

	for _, id := range []string{"1", "2", "3"} {
		_, _, err := executeCLI(t, home, "asset", "define", id, "--uri", "ipfs://asset/"+id)
		require.NoError(t, err)
	}

	_, _, err := executeCLI(t, home, "token", "mint", "7")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "token", "attach", "7", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "asset 1 accepted on token 7")

	stdout, _, err = executeCLI(t, home, "--as", "bob", "token", "attach", "7", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "asset 2 pending on token 7")

	_, _, err = executeCLI(t, home, "--as", "bob", "token", "accept", "7", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller is not the token owner")

	_, _, err = executeCLI(t, home, "token", "accept", "7", "2")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "token", "attach", "7", "3", "--replace", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "asset 3 replaced on token 7")

	_, _, err = executeCLI(t, home, "token", "priority", "7", "2", "3")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "token", "assets", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "owner: owner")
	assert.Contains(t, stdout, "accepted: 2,3")
	assert.Contains(t, stdout, "pending: -")

	stdout, _, err = executeCLI(t, home, "events", "list", "--token", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "asset_added\ttoken=7\tasset=1")
	assert.Contains(t, stdout, "asset_accepted\ttoken=7\tasset=2")
	assert.Contains(t, stdout, "replaces=1")
	assert.Contains(t, stdout, "priority_set\ttoken=7\tpriorities=2,3")
	assert.NotContains(t, stdout, "asset_defined")
}

func TestTokenAttachUnknownTokenFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "asset", "define", "1", "--uri", "ipfs://a")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "token", "attach", "99", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token not found")
}

func TestFeedSpendsFruitAndStartsCooldown(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "setup")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "token", "mint", "3")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "pet", "feed", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fed token 3")
	assert.Contains(t, stdout, "fruit left 9")

	_, _, err = executeCLI(t, home, "pet", "feed", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time has not passed")

	stdout, _, err = executeCLI(t, home, "pet", "status", "3", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"TokenID\": 3")

	stdout, _, err = executeCLI(t, home, "pet", "status", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pets: 1")
	assert.Contains(t, stdout, "Token #3")
}

func TestFeedWithoutFruitFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "token", "mint", "3")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "pet", "feed", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough fruit")
}

func TestSetStatusChangesTokenURI(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "token", "mint", "4")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "pet", "uri", "set", "bad", "ipfs://sad/")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "token", "uri", "4")
	require.NoError(t, err)
	assert.Equal(t, "ipfs://sad/4\n", stdout)

	_, _, err = executeCLI(t, home, "pet", "set-status", "4", "--full")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "pet", "status", "4", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"Health\": 100")
}

func TestWalletEconomyCommands(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "setup")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "wallet", "buy-fruit")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "wallet", "stake", "100")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "wallet", "stake", "10000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough money")

	stdout, _, err := executeCLI(t, home, "wallet", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"Fruit\": 11")
	assert.Contains(t, stdout, "\"Balance\": 380")
	assert.Contains(t, stdout, "\"Staked\": 100")

	stdout, _, err = executeCLI(t, home, "wallet", "withdraw")
	require.NoError(t, err)
	assert.Contains(t, stdout, "withdrew 100")

	_, _, err = executeCLI(t, home, "wallet", "bonus")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "wallet", "bonus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time has not passed")

	_, _, err = executeCLI(t, home, "--as", "bob", "wallet", "bonus", "owner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller does not match account")

	_, _, err = executeCLI(t, home, "wallet", "set-fruit", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fruit count")

	_, _, err = executeCLI(t, home, "wallet", "credit", "5", "--account", "bob")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "wallet", "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "account,fruit,balance")
	assert.Contains(t, stdout, "bob,0,5,0,0,0,0")
}

func TestAssetImportDefinesCatalog(t *testing.T) {
	home := t.TempDir()
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
assets:
  - id: 1
    uri: ipfs://one
  - id: 2
    uri: ipfs://two
    parts: [1, 2]
`), 0o600))

	_, _, err := executeCLI(t, home, "asset", "define", "1", "--uri", "ipfs://first")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "asset", "import", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "defined: 1")
	assert.Contains(t, stdout, "already defined: 1")

	stdout, _, err = executeCLI(t, home, "asset", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "uri: ipfs://first")
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"login\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("TAMAGO_CALLER", "")
	t.Setenv("TAMAGO_LOG_LEVEL", "")
	t.Setenv("TAMAGO_STATE_PATH", "")

	root, app := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	require.NoError(t, app.Close())
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, content string) error {
	configDir := filepath.Join(home, ".tamago")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o600)
}
