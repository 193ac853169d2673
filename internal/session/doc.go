// Package session coordinates one walk through a contact list.
//
// A Session owns the loaded dataset, the message template, the variable
// bindings and the row cursor. Every user action is a method call that
// runs to completion; the only collaborators it calls out to are the
// compose.Launcher and compose.Clipboard passed to Open and Copy.
//
// # States
//
//	NotStarted --Start()--> Active(0)
//	Active(i)  --Next()---> Active(min(i+1, n-1))
//	Active(i)  --Prev()---> Active(max(i-1, 0))
//	any        --Load()---> NotStarted
//
// Start fails with a precondition error when no rows are loaded, a
// variable is unbound or no phone column is chosen. Next and Prev are
// no-ops before Start.
//
// # Usage Example
//
//	s := session.New()
//	s.Load(ds)
//	s.SetTemplate("Hi {{name}}!")
//	_ = s.Bind("name", "First Name")
//	_ = s.BindPhone("Mobile")
//	if err := s.Start(); err != nil {
//	    fmt.Println(session.UserMessage(err))
//	}
//	p, _ := s.Preview()
//	fmt.Println(p.Progress(), p.Phone, p.Message)
//	err := s.Open(ctx, compose.NewSystemLauncher(compose.PlatformAuto))
package session
