package repo

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"folio/config"
)

const maxDialRetries = 5

// NewOrm dials the metadata DB, retrying with exponential backoff in
// case the DB is still coming up.
func NewOrm(ctx context.Context, mysqlCfg config.MySQL) (*gorm.DB, error) {
	var orm *gorm.DB

	dial := func() error {
		var err error
		orm, err = gorm.Open(mysql.Open(mysqlCfg.ToDSN()), &gorm.Config{})
		if err != nil {
			log.Ctx(ctx).Warn().Msgf("dial metadata db failed, err: %v", err)
		}
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxDialRetries), ctx)
	if err := backoff.Retry(dial, bo); err != nil {
		return nil, err
	}

	return orm, nil
}

func CloseOrm(orm *gorm.DB) error {
	if orm == nil {
		return nil
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
