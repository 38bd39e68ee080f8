/*
Package cosim connects software written against a blocking SPI master to a
digital design running in a simulation kernel instead of real silicon.

The simulation kernel is loaded and stepped by a Binding on its own goroutine,
locked to an OS thread. Every time the simulated SPI peripheral samples its
shift register, the kernel calls the Peripheral, which moves one byte between
the simulated bus and a Registry. On the host side, a Master implements the
usual full-duplex Transfer contract on top of the same Registry:

	reg := cosim.NewRegistry(0)
	b := cosim.NewBinding(reg, ghdl.Load, cosim.Options{Artifact: "build/test.so"})
	if err := b.Start(); err != nil {
		// artifact missing or incomplete
	}
	m, _ := cosim.NewMaster(reg)
	buf := []byte{0x11, 0x02, 0x03, 0x04}
	if _, err := m.Transfer(buf); err != nil {
		// the peripheral went away
	}
	b.Stop()
	status, err := b.Wait()

Signals are nine-valued (see Logic). Reading a signal that is not driven to a
boolean state is an error: the point of a cosimulation is to expose such
defects, not to hide them.

*/
package cosim
