// Package actor runs a mailbox loop over [tuple.Message] values.
//
// Behaviors are [dispatch.Handler] values; the loop applies the dispatch
// outcome contract: consumed on success, stashed on skip, discarded on drop.
//
//	a := actor.New(actor.Options{}, dispatch.Chain(
//	    dispatch.Typed2(func(ctx context.Context, m tuple.Tuple2[string, int]) error {
//	        // handle ("add", n)
//	        return nil
//	    }),
//	))
//	defer a.Stop()
//
//	msg := tuple.New2("add", 1).Message()
//	_ = a.Send(ctx, msg)
//
// Send hands the actor its own holder of the message; the sender may keep or
// release its own independently.
package actor
