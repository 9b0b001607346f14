// Command chanplay runs the channel library's documented scenarios
// against the real implementation, for manual exploration alongside the
// automated test suite.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/thrasher-corp/chantex/channel"
)

func main() {
	app := &cli.App{
		Name:  "chanplay",
		Usage: "run the channel library's documented scenarios",
		Commands: []*cli.Command{
			{Name: "s1", Usage: "buffered round-trip", Action: runS1},
			{Name: "s2", Usage: "full channel, non-blocking send", Action: runS2},
			{Name: "s3", Usage: "rendezvous handoff", Action: runS3},
			{Name: "s4", Usage: "close wakes every blocked caller", Action: runS4},
			{Name: "s5", Usage: "select picks the first ready op", Action: runS5},
			{Name: "s6", Usage: "select wakes on close", Action: runS6},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runS1(*cli.Context) error {
	c, err := channel.New[string](2)
	if err != nil {
		return err
	}
	fmt.Println("send A:", c.Send("A", true))
	fmt.Println("send B:", c.Send("B", true))
	x, status := c.Receive(true)
	fmt.Println("receive:", x, status)
	y, status := c.Receive(true)
	fmt.Println("receive:", y, status)
	return nil
}

func runS2(*cli.Context) error {
	c, err := channel.New[string](1)
	if err != nil {
		return err
	}
	fmt.Println("send A (non-blocking):", c.Send("A", false))
	fmt.Println("send B (non-blocking):", c.Send("B", false))
	return nil
}

func runS3(*cli.Context) error {
	c, err := channel.New[string](0)
	if err != nil {
		return err
	}
	var g errgroup.Group
	g.Go(func() error {
		fmt.Println("send (rendezvous):", c.Send("A", true))
		return nil
	})
	g.Go(func() error {
		time.Sleep(10 * time.Millisecond)
		x, status := c.Receive(true)
		fmt.Println("receive (rendezvous):", x, status)
		return nil
	})
	return g.Wait()
}

func runS4(*cli.Context) error {
	c, err := channel.New[int](1)
	if err != nil {
		return err
	}
	c.Send(1, true)

	var g errgroup.Group
	g.Go(func() error {
		fmt.Println("blocked send:", c.Send(2, true))
		return nil
	})
	g.Go(func() error {
		fmt.Println("blocked send:", c.Send(3, true))
		return nil
	})

	time.Sleep(20 * time.Millisecond)
	fmt.Println("close:", c.Close())
	return g.Wait()
}

func runS5(*cli.Context) error {
	c1, err := channel.New[string](1)
	if err != nil {
		return err
	}
	c2, err := channel.New[string](1)
	if err != nil {
		return err
	}
	c1.Send("X", true)

	var v1, v2 string
	idx, status := channel.Select(channel.ReceiveOp(c1, &v1), channel.ReceiveOp(c2, &v2))
	fmt.Printf("select picked index %d, status %v, value %q\n", idx, status, v1)
	return nil
}

func runS6(*cli.Context) error {
	c1, err := channel.New[int](0)
	if err != nil {
		return err
	}
	c2, err := channel.New[int](0)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		var v1, v2 int
		idx, status := channel.Select(channel.ReceiveOp(c1, &v1), channel.ReceiveOp(c2, &v2))
		fmt.Printf("select returned after close: index %d, status %v\n", idx, status)
	}()

	time.Sleep(20 * time.Millisecond)
	fmt.Println("close c2:", c2.Close())
	<-done
	return nil
}
