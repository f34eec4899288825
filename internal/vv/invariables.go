//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import (
	"time"
)

var (
	LaunchTime = time.Now()
)

// DefaultRoster - the calls a bare run will model; every id is TICKER-Qn-YYYY
var DefaultRoster = []string{
	"AAPL-Q1-2019",
	"AAPL-Q2-2019",
	"MSFT-Q1-2019",
	"MSFT-Q2-2019",
	"AMZN-Q1-2019",
	"AMZN-Q2-2019",
	"GOOGL-Q1-2019",
	"FB-Q1-2019",
	"NVDA-Q1-2019",
	"NVDA-Q2-2019",
	"INTC-Q1-2019",
	"AMD-Q1-2019",
	"AMD-Q2-2019",
	"CSCO-Q1-2019",
	"ORCL-Q1-2019",
	"IBM-Q1-2019",
	"CRM-Q1-2019",
	"ADBE-Q1-2019",
	"ADBE-Q2-2019",
	"NFLX-Q1-2019",
	"TSLA-Q1-2019",
	"TSLA-Q2-2019",
	"QCOM-Q1-2019",
	"TXN-Q1-2019",
	"AVGO-Q1-2019",
	"MU-Q1-2019",
	"AMAT-Q1-2019",
	"ADSK-Q1-2019",
	"ADSK-Q2-2021",
	"INTU-Q1-2019",
	"NOW-Q1-2019",
	"WDAY-Q1-2019",
	"OKTA-Q1-2019",
	"SPLK-Q1-2019",
	"PANW-Q1-2019",
	"PYPL-Q1-2019",
}
