package handler

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/settings"
	"github.com/fekuna/omnipos-console/internal/settings/dto"
)

var _ console.Registrar = (*SettingsHandler)(nil)

type SettingsHandler struct {
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: log,
	}
}

type FormatResponse struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

func (h *SettingsHandler) Register(r *console.Router) {
	r.Handle("settings", "show", "settings show", h.GetSettings)
	r.Handle("settings", "currency", "settings currency <code>", h.SetCurrency)
	r.Handle("settings", "theme", "settings theme", h.ToggleTheme)
	r.Handle("settings", "set", "settings set [name=] [email=] [phone=] [company=] [compact=] [language=] [notify-email=] [notify-sms=] [notify-push=] [2fa=] [autologout=]", h.UpdateSettings)
	r.Handle("settings", "format", "settings format <amount>", h.FormatAmount)
}

func (h *SettingsHandler) GetSettings(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.GetSettings(ctx)
}

func (h *SettingsHandler) SetCurrency(ctx context.Context, req *console.Request) (interface{}, error) {
	code := req.String("code")
	if code == "" && len(req.Positional) > 0 {
		code = req.Positional[0]
	}
	if code == "" {
		return nil, apperr.Validation("currency code required")
	}
	return h.uc.SetCurrency(ctx, code)
}

func (h *SettingsHandler) ToggleTheme(ctx context.Context, req *console.Request) (interface{}, error) {
	return h.uc.ToggleTheme(ctx)
}

func (h *SettingsHandler) UpdateSettings(ctx context.Context, req *console.Request) (interface{}, error) {
	input := &dto.UpdateSettingsInput{
		FullName: req.StringPtr("name"),
		Email:    req.StringPtr("email"),
		Phone:    req.StringPtr("phone"),
		Company:  req.StringPtr("company"),
		Language: req.StringPtr("language"),
	}

	flags := []struct {
		key string
		dst **bool
	}{
		{"compact", &input.CompactMode},
		{"notify-email", &input.EmailNotifications},
		{"notify-sms", &input.SMSNotifications},
		{"notify-push", &input.PushNotifications},
		{"2fa", &input.TwoFactor},
		{"autologout", &input.AutoLogout},
	}
	for _, f := range flags {
		b, err := req.BoolPtr(f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = b
	}

	return h.uc.UpdateSettings(ctx, input)
}

func (h *SettingsHandler) FormatAmount(ctx context.Context, req *console.Request) (interface{}, error) {
	raw := req.String("amount")
	if raw == "" && len(req.Positional) > 0 {
		raw = req.Positional[0]
	}
	amount, err := console.ParseDecimal("amount", raw)
	if err != nil {
		return nil, err
	}
	formatted, err := h.uc.FormatCurrency(ctx, amount)
	if err != nil {
		return nil, err
	}
	return &FormatResponse{Amount: amount.String(), Formatted: formatted}, nil
}
