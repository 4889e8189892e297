// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "orders"),
//		logger.WithContextValue("lang", ctxKeyLanguage),
//	)
//	logger.SetAsDefault(log)
//
//	if err := guard.Signed("quantity", q).IsPositive().Resolve(); err != nil {
//		log.WarnContext(ctx, "rejected order",
//			logger.Parameter("quantity"),
//			logger.Error(err),
//		)
//	}
//
// New picks slog.NewTextHandler or slog.NewJSONHandler by Format and wraps it
// with a context handler that runs the registered ContextExtractor callbacks
// on every record, so request-scoped values such as the message language are
// logged without passing them around.
//
// Options:
//
//   - WithDevelopment, WithStaging, WithProduction and WithEnvironment apply
//     per environment presets.
//   - WithFormat, WithTextFormatter and WithJSONFormatter select the format;
//     WithFormat panics on unknown formats.
//   - WithLevel sets the minimum level. ParseLevel and ParseFormat convert
//     configuration strings.
//   - WithAttr adds static attributes.
//   - WithContextExtractors and WithContextValue add context attributes.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
