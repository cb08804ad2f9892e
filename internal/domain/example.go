package domain

// ExampleBuffer is the program the playground starts with when no source is given.
const ExampleBuffer = `module playground

expose main

fun main(): i32 {
    return pow(2, 10)
}

fun pow(a: i32, b: i32): i32 {
    if b == 0 {
        return 1
    }

    let n = b
    let x = a
    let acc = 1

    while n > 1 {
        if n % 2 == 1 {
            acc = acc * x
        }
        x = x * x
        n = n / 2
    }
    return x * acc
}
`
