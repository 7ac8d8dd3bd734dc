// Package clientcli turns lumpctl command invocations into lump store
// requests and renders their results.
//
// A Request is parsed up front so that bad input never reaches the network.
// The Dispatcher then issues exactly one RPC through a LumpClient, blocks
// until the engine resolves it, and hands the Result to a Formatter.
//
// # Basic Usage
//
//	h, _ := engine.Start()
//	client, err := lumprpc.Dial("127.0.0.1:14278", h, lumprpc.DialOptions{})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	req, err := clientcli.NewRequest(lumpctl.CommandGet, "dev1", "01")
//	if err != nil {
//		return err
//	}
//
//	d, _ := clientcli.NewDispatcher(client)
//	f, _ := clientcli.NewFormatter(clientcli.OutputText)
//	return d.Execute(ctx, os.Stdout, f, req)
//
// # Output Formatting
//
// HumanFormatter prints the plain text forms ("Removed <id>",
// "<id> does not exist"). JSONFormatter and YAMLFormatter emit the same
// fields as structured documents, with fetched values base64 encoded next
// to their CIDv1 content id.
package clientcli
