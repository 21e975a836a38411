package handler

import (
	"net/http"

	"family-ledger-go/internal/auth"
	ledgerdomain "family-ledger-go/internal/domain/ledger"
	orgdomain "family-ledger-go/internal/domain/organization"
	reportsdomain "family-ledger-go/internal/domain/reports"
	uploadsdomain "family-ledger-go/internal/domain/uploads"
	userdomain "family-ledger-go/internal/domain/user"
	"family-ledger-go/pkg/logger"
)

type Handlers struct {
	Users         *userdomain.Service
	Organizations *orgdomain.Service
	Ledger        *ledgerdomain.Service
	Reports       *reportsdomain.Service
	Uploads       *uploadsdomain.Service
	Tokens        *auth.Tokens
	log           logger.Logger
}

func New(
	users *userdomain.Service,
	organizations *orgdomain.Service,
	ledger *ledgerdomain.Service,
	reports *reportsdomain.Service,
	uploads *uploadsdomain.Service,
	tokens *auth.Tokens,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:         users,
		Organizations: organizations,
		Ledger:        ledger,
		Reports:       reports,
		Uploads:       uploads,
		Tokens:        tokens,
		log:           log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
