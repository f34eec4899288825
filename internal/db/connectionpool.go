//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/fin-corpora/EarningsCallTopics/internal/str"
	"github.com/fin-corpora/EarningsCallTopics/internal/vv"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FillDBConnectionPool - build the pgxpool that the whole program will Acquire() from
func FillDBConnectionPool(cfg str.CurrentConfiguration) *pgxpool.Pool {
	// if min < WorkerCount the fetch of a full roster will be slowed significantly
	// and remember that idle connections close, so you can have 20 workers fighting for one connection: very bad news

	// max caps the resource allocation on a shared archive server; the lexicon fetches
	// run several statements per session and will hold connections longer than the transcript pulls

	const (
		UTPL    = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
		FAIL1   = "Configuration error. Could not execute ParseConfig(url) via '%s'"
		FAIL2   = "Could not connect to PostgreSQL within %.0fs"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is a configuration problem; see the following response from PostgreSQL:`
	)

	mn := cfg.WorkerCount
	mx := vv.SIMULTANEOUSGETS * cfg.WorkerCount

	pl := cfg.PGLogin
	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)

	config, e := pgxpool.ParseConfig(url)
	if e != nil {
		msg.MAND(fmt.Sprintf(FAIL1, url))
		msg.ExitOrHang(0)
	}

	var thepool *pgxpool.Pool

	op := func() error {
		p, err := pgxpool.NewWithConfig(context.Background(), config)
		if err != nil {
			return err
		}
		if err = p.Ping(context.Background()); err != nil {
			p.Close()
			return err
		}
		thepool = p
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = vv.DBCONNECTWAIT

	e = backoff.Retry(op, bo)
	if e != nil {
		msg.MAND(fmt.Sprintf(FAIL2, vv.DBCONNECTWAIT.Seconds()))
		if strings.Contains(e.Error(), ERRRUN) {
			msg.MAND(fmt.Sprintf(FAILRUN, ERRRUN, cfg.PGLogin.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			msg.MAND(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(e.Error(), ERRSRV)
			msg.CRIT(parts[1])
		}
		msg.ExitOrHang(0)
	}

	return thepool
}
