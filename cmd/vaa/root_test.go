package vaa

import (
	"bytes"
	"io"
	"testing"
)

const (
	registrationHex = "010000000001003c24dcbbbb0d1c747980ba8d0310e0a46c44ea7cf6b7008b5524b48fcfff00243b015dc423b27fbfb28cf43a9d0962ad639b80e4e598928790336924f9fbc3cd00000000010000000100010000000000000000000000000000000000000000000000000000000000000004000000000000000100000000000000000000000000000000000000000000546f6b656e42726964676501000000020000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16"
	registrationDigest = "7e1fad1176330a14e8f9f3bb398a20f2d315f132555510aa6e364a10911e964b"

	coreUpgradeHex = "01000000000200996cd852d509f4ae392ce48785143449334ffe71d8a4c0bb32f535e8de172b7e4bfe38736919e110bda20a558fe84856badc7a4559a028c4c0ab6a935bb4c2fe0001a06a62aa7bfded191d318ddc70440cbd439324a3c1ac3bbac0c1f218604dc0e232551b5ebcc4f6bb1c5dfcbc2193a689e1d23947eb33797aba2d3e733ef8e3d10100000001000000010001000000000000000000000000000000000000000000000000000000000000000400000000000000070000000000000000000000000000000000000000000000000000000000436f72650100020000000000000000000000000000000000000000000000000000000000000004"

	devnetGuardianAddress = "0xbeFA429d57cD18b7F8A4d91A2da9AB4AF05d0FBe"
)

// execute runs the root command with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := BuildVAACmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
