// Package catalog provides localized messages for guard errors.
//
// Messages live in YAML files keyed by guard.Kind.Key(), with %{parameter},
// %{actual} and %{expected} placeholders:
//
//	de:
//	  guard:
//	    range:
//	      less_than: "%{parameter} muss kleiner als %{expected} sein"
//
// English, German and Russian are embedded. Extra directories add languages
// or override single keys:
//
//	c, err := catalog.New(ctx,
//	    catalog.WithLanguage("de-AT"),
//	    catalog.WithDirectory("./locales"),
//	)
//	if err != nil {
//	    return err
//	}
//	err = guard.Signed("quantity", q).IsPositive().ResolveWith(c)
//
// Install reads the GUARD_* environment variables (see Config) and replaces
// the default catalog of package guard:
//
//	if _, err := catalog.Install(ctx); err != nil {
//	    log.Fatal(err)
//	}
package catalog
