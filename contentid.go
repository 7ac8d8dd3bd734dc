package lumpctl

import (
	"crypto/sha256"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ContentID returns the CIDv1 (raw codec, sha2-256) of data. Reports use it
// so a fetched value can be compared with copies held elsewhere.
func ContentID(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// ContentIDFromDigest builds the same CID as ContentID from a precomputed
// sha2-256 digest.
func ContentIDFromDigest(sha256sum []byte) (string, error) {
	if len(sha256sum) != sha256.Size {
		return "", fmt.Errorf("sha2-256 digest must be %d bytes, got %d", sha256.Size, len(sha256sum))
	}
	mh, err := multihash.Encode(sha256sum, multihash.SHA2_256)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, mh).String(), nil
}
