package impl

import (
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/util"
)

// skuAttempts bounds how often creation retries after an SKU collision.
const skuAttempts = 3

// createWithSKU calls create with a fresh SKU until it stops colliding or the attempts run out.
func createWithSKU(c clock, prefix string, create func(sku string) error) error {
	var err error
	for range skuAttempts {
		err = create(util.GenerateSKU(prefix, c.now()))
		if !errors.Is(err, repository.ErrDuplicateSKU) {
			return err
		}
	}

	return errors.Wrapf(err, "sku still colliding after %d attempts", skuAttempts)
}
