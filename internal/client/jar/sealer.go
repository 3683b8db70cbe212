package jar

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/assessment/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/assessment/internal/common"
	"github.com/dmitrijs2005/assessment/internal/cryptox"
)

const saltKey = "jar_salt"

// SealerFor returns the sealer for passphrase, creating the installation
// salt on first use. An empty passphrase yields a nil Sealer.
func SealerFor(ctx context.Context, meta metadata.Repository, passphrase string) (Sealer, error) {
	if passphrase == "" {
		return nil, nil
	}
	salt, err := meta.GetOrCreate(ctx, saltKey, func() []byte {
		return common.GenerateRandByteArray(cryptox.SaltSize)
	})
	if err != nil {
		return nil, fmt.Errorf("jar salt: %w", err)
	}

	pass := []byte(passphrase)
	defer common.WipeByteArray(pass)

	s, err := cryptox.NewSealer(pass, salt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
