// Package validation provides the host's rule-string validator and the error
// bag field plugins attach their messages to.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "handle": "mobile",
//	}, validation.Rules{
//	    "handle": "required|alpha_dash|max:64",
//	})
//
//	if v.Fails() {
//	    // JSON: {"errors": {"field": ["message1", "message2"]}}
//	}
//
// # Built-in Rules
//
//   - required     field must be present and non-empty
//   - nullable     skip remaining rules when the value is empty
//   - sometimes    alias of nullable
//   - boolean      true/false/1/0/yes/no (case-insensitive)
//   - min:n, max:n, size:n   UTF-8 character counts
//   - in:a,b,c     value must be in the list
//   - alpha, alpha_dash, regex:pattern
//
// # Custom Rules
//
// Plugins register rules on a Factory; validators made by that factory run
// them after the built-ins. The telephone plugin registers "telephone":
//
//	factory := validation.NewFactory()
//	factory.Extend("telephone", rule)
//	v := factory.Make(data, validation.Rules{"phone": "nullable|telephone:US"})
//
// # Error Bag
//
//	errs := &validation.Errors{}
//	errs.Add("phone", "The string supplied did not seem to be a phone number.")
//	errs.First("phone")
package validation
