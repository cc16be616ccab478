package rate

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
)

// Sign: подпись запроса цен: md5hex("<secret>_<PfId>_<sign>").
func Sign(secret, pfID, sign string) string {
	sum := md5.Sum([]byte(secret + "_" + pfID + "_" + sign)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}
