package handle

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"s2replay/internal/faults"
)

const (
	packedCodeHexLen = 8
	handlePrefixLen  = 2 * packedCodeHexLen
	depotHostSuffix  = ".depot.battle.net:1119/"
)

// DecodePackedCode converts the hex form of a four character code into text.
// Zero bytes are omitted; the remaining characters keep their order.
func DecodePackedCode(code string) (string, error) {
	if len(code) != packedCodeHexLen {
		return "", faults.Wrap(faults.ErrDecode, "cache handle", "packed code",
			fmt.Sprintf("expected %d hex characters, got %d", packedCodeHexLen, len(code)), nil)
	}
	var b strings.Builder
	for i := 0; i < packedCodeHexLen; i += 2 {
		n, err := strconv.ParseUint(code[i:i+2], 16, 8)
		if err != nil {
			return "", faults.Wrap(faults.ErrDecode, "cache handle", "packed code", fmt.Sprintf("invalid hex %q", code), err)
		}
		if n != 0 {
			b.WriteByte(byte(n))
		}
	}
	return b.String(), nil
}

// TranslateHandle renders a raw cache handle as a depot URI of the form
// http://<region>.depot.battle.net:1119/<hash>.<purpose>.
func TranslateHandle(raw []byte) (string, error) {
	encoded := hex.EncodeToString(raw)
	if len(encoded) < handlePrefixLen {
		return "", faults.Wrap(faults.ErrDecode, "cache handle", "translate",
			fmt.Sprintf("handle is %d bytes, need at least %d", len(raw), handlePrefixLen/2), nil)
	}

	purpose, err := DecodePackedCode(encoded[:packedCodeHexLen])
	if err != nil {
		return "", err
	}
	region, err := DecodePackedCode(encoded[packedCodeHexLen:handlePrefixLen])
	if err != nil {
		return "", err
	}
	contentHash := encoded[handlePrefixLen:]

	var b strings.Builder
	b.Grow(len("http://") + len(region) + len(depotHostSuffix) + len(contentHash) + 1 + len(purpose))
	b.WriteString("http://")
	b.WriteString(strings.ToLower(region))
	b.WriteString(depotHostSuffix)
	b.WriteString(strings.ToLower(contentHash))
	b.WriteByte('.')
	b.WriteString(strings.ToLower(purpose))
	return b.String(), nil
}
