package foundry

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/TheJoeSmo/Foundry/rom"
	"github.com/TheJoeSmo/Foundry/worldmap"
)

// scanWorkers is how many worlds are indexed concurrently. The codecs are
// pure functions over the shared image, so unsynchronised parallel reads
// are safe; the database serialises its own writes.
const scanWorkers = 3

func (f *Foundry) findWorlds(ctx context.Context) (<-chan int, <-chan error, error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for world := 0; world < worldmap.WorldCount; world++ {
			select {
			case out <- world:
			case <-ctx.Done():
				errc <- errors.New("scan cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (f *Foundry) worldWorker(ctx context.Context, r *rom.ROM, romID int64, in <-chan int) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for world := range in {
			regions, err := rom.ReadIndexRegions(r, world)
			if err != nil {
				errc <- err
				return
			}

			index, err := worldmap.DecodeIndex(regions)
			if err != nil {
				errc <- err
				return
			}

			for _, entry := range index.Entries() {
				if entry.Resolution.Redirect {
					f.logger.Printf("World %d screen %d redirects to world %d\n", world, entry.Screen, entry.Resolution.TargetWorld)
					continue
				}
				if err := f.db.AddLevel(romID, world, entry); err != nil {
					errc <- err
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return errc, nil
}

// Scan catalogues every level of a cartridge image into the database,
// walking each world's index the way the game resolves board positions.
func (f *Foundry) Scan(path string) error {
	r, err := rom.Load(path)
	if err != nil {
		return err
	}

	romID, err := f.db.AddROM(crcROM(r), filepath.Base(path))
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	worlds, errc, err := f.findWorlds(ctx)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := f.worldWorker(ctx, r, romID, worlds)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
